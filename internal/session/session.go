// Package session drives the interactive device-collection loop: for each
// device it asks for a name, power, hours per day and days per month,
// computes the monthly figures and appends the record to the registry,
// until the user declines to add another device.
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/thalesmenezes286/consumo-energia-pc/internal/config"
	"github.com/thalesmenezes286/consumo-energia-pc/internal/device"
	"github.com/thalesmenezes286/consumo-energia-pc/internal/energy"
	"github.com/thalesmenezes286/consumo-energia-pc/internal/notification"
	"github.com/thalesmenezes286/consumo-energia-pc/internal/prompt"
)

// CalcFunc computes monthly kWh and cost from validated device inputs.
type CalcFunc func(powerWatts, hoursPerDay, daysPerMonth int, pricePerKWh float64) (kwh, cost float64, err error)

// ErrCalcFault wraps a computation failure. The session stops collecting
// immediately, but whatever was accumulated before the fault is still
// reported by the caller.
var ErrCalcFault = errors.New("computation fault")

// Session collects device records from the user.
type Session struct {
	cfg      *config.Config
	reader   *prompt.Reader
	out      io.Writer
	notifier *notification.Notifier
	auditor  *notification.Auditor

	// Calc derives the monthly figures; replaced in tests to exercise
	// the fault path.
	Calc CalcFunc
}

// New creates a session asking questions through reader and writing
// section headers to out. The reader must wrap the same input stream for
// the whole session so buffered lines are not lost between questions.
func New(cfg *config.Config, reader *prompt.Reader, out io.Writer, notifier *notification.Notifier, auditor *notification.Auditor) *Session {
	return &Session{
		cfg:      cfg,
		reader:   reader,
		out:      out,
		notifier: notifier,
		auditor:  auditor,
		Calc:     energy.Monthly,
	}
}

// Run loops collecting devices into reg until the user answers "n",
// input is exhausted, or a computation fault occurs. Validation failures
// re-prompt and never end the session. A computation fault returns an
// error wrapping ErrCalcFault; records collected before it stay in reg.
func (s *Session) Run(reg *device.Registry) error {
	limits := s.cfg.Limits
	price := s.cfg.Pricing.PricePerKWh

	for {
		fmt.Fprintf(s.out, "\n--- Adicionando Dispositivo #%d ---\n", reg.Len()+1)

		name, err := s.reader.ValidatedText(
			"Qual nome você gostaria de dar para este dispositivo? \n",
			func(v string) bool { return prompt.ValidName(v, limits.NameMin, limits.NameMax) },
			fmt.Sprintf("Poxa! O nome do dispositivo deve ter entre %d e %d caracteres.", limits.NameMin, limits.NameMax),
		)
		if err != nil {
			return s.endOfInput(err)
		}

		power, err := s.reader.BoundedInt(
			"Qual é a potência do dispositivo em WATTS (ex: 300, 500, 750)?\n",
			limits.PowerMin, limits.PowerMax,
		)
		if err != nil {
			return s.endOfInput(err)
		}

		hours, err := s.reader.BoundedInt(
			fmt.Sprintf("Quantas horas por dia o dispositivo fica ligado (%d a %d horas)?\n",
				limits.HoursMin, limits.HoursMax),
			limits.HoursMin, limits.HoursMax,
		)
		if err != nil {
			return s.endOfInput(err)
		}

		days, err := s.reader.BoundedInt(
			fmt.Sprintf("Quantos dias por mês o dispositivo fica ligado (%d a %d dias)?\n",
				limits.DaysMin, limits.DaysMax),
			limits.DaysMin, limits.DaysMax,
		)
		if err != nil {
			return s.endOfInput(err)
		}

		kwh, cost, err := s.Calc(power, hours, days, price)
		if err != nil {
			// Fatal for the session, but not for the results already
			// collected: the caller still reports them.
			fmt.Fprintf(s.out, "\nOcorreu um erro inesperado ao calcular: %v\n", err)
			s.notifier.Error(fmt.Sprintf("calculation failed: %v", err))
			s.auditor.LogCalcFault(err)
			return fmt.Errorf("%w: %v", ErrCalcFault, err)
		}

		rec := device.Record{
			Name:         name,
			PowerWatts:   power,
			HoursPerDay:  hours,
			DaysPerMonth: days,
			MonthlyKWh:   kwh,
			MonthlyCost:  cost,
		}
		reg.Append(rec)
		s.notifier.DeviceAdded(rec)
		s.auditor.LogDeviceAdded(rec)

		again, err := s.reader.YesNo("\nDeseja adicionar outro dispositivo? (s/n): ")
		if err != nil {
			return s.endOfInput(err)
		}
		if !again {
			return nil
		}
	}
}

// endOfInput maps an exhausted stdin onto the normal "no more devices"
// path; anything else is a real I/O failure.
func (s *Session) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
