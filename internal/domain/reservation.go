package domain

import (
	"errors"
	"time"

	"github.com/m04kA/BRS-RentalGateway/pkg/types"
)

// ReservationStep шаг многошаговой формы бронирования
type ReservationStep string

const (
	StepSelectProducts    ReservationStep = "select_products"
	StepConfigureSchedule ReservationStep = "configure_schedule"
	StepReviewAndSubmit   ReservationStep = "review_and_submit"
)

// Ошибки переходов формы бронирования
var (
	// ErrProductSelectionRequired переход вперёд без выбранных товаров
	ErrProductSelectionRequired = errors.New("reservation: product selection is required")

	// ErrScheduleRequired переход вперёд без даты или времени
	ErrScheduleRequired = errors.New("reservation: date and start time are required")

	// ErrInvalidStep операция недопустима на текущем шаге
	ErrInvalidStep = errors.New("reservation: operation is not allowed at this step")

	// ErrSubmitInProgress форма уже отправляется
	ErrSubmitInProgress = errors.New("reservation: submit is already in progress")

	// ErrInvalidTurns число турнов вне диапазона 1..3
	ErrInvalidTurns = errors.New("reservation: turns must be between 1 and 3")

	// ErrInvalidOccupants число людей вне диапазона 1..2
	ErrInvalidOccupants = errors.New("reservation: occupants must be between 1 and 2")

	// ErrInvalidPayment неизвестный способ оплаты
	ErrInvalidPayment = errors.New("reservation: unknown payment method")
)

// ReservationForm состояние полей многошаговой формы
type ReservationForm struct {
	SelectedProductIDs []string
	Turns              int
	Occupants          int

	Date      time.Time
	StartTime types.TimeString

	PaymentMethod  PaymentMethod
	StormInsurance bool

	Name  string
	Email string
	Phone string
}

// ReservationFlow состояние процесса бронирования: текущий шаг,
// признак отправки и поля формы. Переходы между шагами охраняются
// методами, недопустимые переходы невыразимы снаружи
//
// Состояние живёт только в памяти и не переживает перезапуск
type ReservationFlow struct {
	Step       ReservationStep
	Submitting bool
	Completed  bool
	Form       ReservationForm
}

// NewReservationFlow создает процесс на первом шаге с дефолтами формы
func NewReservationFlow() *ReservationFlow {
	return &ReservationFlow{
		Step: StepSelectProducts,
		Form: defaultForm(),
	}
}

func defaultForm() ReservationForm {
	return ReservationForm{
		Turns:         MinTurns,
		Occupants:     MinOccupants,
		PaymentMethod: PaymentCash,
	}
}

// Snapshot возвращает копию состояния процесса,
// безопасную для чтения вне блокировки хранилища
func (f *ReservationFlow) Snapshot() ReservationFlow {
	snap := *f
	snap.Form.SelectedProductIDs = append([]string(nil), f.Form.SelectedProductIDs...)
	return snap
}

// ApplySelection сохраняет выбор товаров и переводит форму на шаг
// настройки расписания. Требует непустой выбор
func (f *ReservationFlow) ApplySelection(productIDs []string, turns, occupants int) error {
	if f.Submitting {
		return ErrSubmitInProgress
	}
	if f.Step != StepSelectProducts {
		return ErrInvalidStep
	}
	if len(productIDs) == 0 {
		return ErrProductSelectionRequired
	}
	if turns < MinTurns || turns > MaxTurns {
		return ErrInvalidTurns
	}
	if occupants < MinOccupants || occupants > MaxOccupants {
		return ErrInvalidOccupants
	}

	f.Form.SelectedProductIDs = productIDs
	f.Form.Turns = turns
	f.Form.Occupants = occupants
	f.Step = StepConfigureSchedule
	return nil
}

// ApplySchedule сохраняет дату, время, способ оплаты и страховку и
// переводит форму на шаг подтверждения. Требует дату и время
func (f *ReservationFlow) ApplySchedule(date time.Time, startTime types.TimeString, payment PaymentMethod, stormInsurance bool) error {
	if f.Submitting {
		return ErrSubmitInProgress
	}
	if f.Step != StepConfigureSchedule {
		return ErrInvalidStep
	}
	if date.IsZero() || startTime.IsZero() {
		return ErrScheduleRequired
	}
	if !payment.IsValid() {
		return ErrInvalidPayment
	}

	f.Form.Date = date
	f.Form.StartTime = startTime
	f.Form.PaymentMethod = payment
	f.Form.StormInsurance = stormInsurance
	f.Step = StepReviewAndSubmit
	return nil
}

// Back возвращает форму на предыдущий шаг
// Разрешён с любого шага кроме первого, но не во время отправки
func (f *ReservationFlow) Back() error {
	if f.Submitting {
		return ErrSubmitInProgress
	}

	switch f.Step {
	case StepConfigureSchedule:
		f.Step = StepSelectProducts
	case StepReviewAndSubmit:
		f.Step = StepConfigureSchedule
	default:
		return ErrInvalidStep
	}
	return nil
}

// BeginSubmit фиксирует контактные данные и переводит форму в отправку
// Допустим только на шаге подтверждения и только один раз за попытку
func (f *ReservationFlow) BeginSubmit(name, email, phone string) error {
	if f.Submitting {
		return ErrSubmitInProgress
	}
	if f.Step != StepReviewAndSubmit {
		return ErrInvalidStep
	}

	f.Form.Name = name
	f.Form.Email = email
	f.Form.Phone = phone
	f.Submitting = true
	return nil
}

// FinishSubmit завершает попытку отправки
// При успехе форма полностью сбрасывается и возвращается на первый шаг,
// процесс помечается завершённым; при неудаче состояние сохраняется,
// форма остаётся на шаге подтверждения
func (f *ReservationFlow) FinishSubmit(success bool) {
	f.Submitting = false
	if success {
		f.Form = defaultForm()
		f.Step = StepSelectProducts
		f.Completed = true
	}
}
