package create_booking

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/ateliernature/animations-booking/internal/availability"
	"github.com/ateliernature/animations-booking/internal/domain"
	"github.com/ateliernature/animations-booking/internal/integrations/mailer"
	"github.com/ateliernature/animations-booking/pkg/dates"
)

// UseCase use case для создания бронирования со стороны школы
type UseCase struct {
	bookingRepo  BookingRepository
	snapshots    SnapshotProvider
	mailerClient MailerClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	snapshots SnapshotProvider,
	mailerClient MailerClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		snapshots:    snapshots,
		mailerClient: mailerClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Последний записавший выигрывает: при одновременных заявках на один слот
// проверка идет по снапшоту на момент вызова
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: animation=%s, date=%s, time=%d, school=%q",
		req.AnimationID, req.Date, req.Time, req.SchoolName)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Получаем снапшот доступности
	snap, err := uc.snapshots.Get(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to load snapshot: %v", err)
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
	}

	// 3. Находим анимацию
	var animation *domain.Animation
	for _, a := range snap.Animations {
		if a.ID == req.AnimationID {
			animation = a
			break
		}
	}
	if animation == nil {
		uc.logger.Warn("CreateBooking: animation id=%s not found", req.AnimationID)
		return nil, ErrAnimationNotFound
	}

	// 4. Час должен входить в настроенный набор слотов
	if err := validateTimeSlot(req.Time, snap.Settings); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	date, err := dates.ParseDay(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	// 5. Правила доступности, по отдельности ради точных ошибок:
	// эксклюзивность слота, календарь, ограничения аниматора
	if !availability.SlotFree(animation, req.Date, req.Time, snap) {
		uc.logger.Warn("CreateBooking: slot %s %dh already taken", req.Date, req.Time)
		return nil, ErrSlotNotAvailable
	}
	if !availability.DateBookable(date, now, snap.Settings) {
		uc.logger.Warn("CreateBooking: date %s is not bookable", req.Date)
		return nil, ErrDateNotBookable
	}
	if !availability.AnimatorAvailable(animation.Animator, req.Date, req.Time, snap.Settings) {
		uc.logger.Warn("CreateBooking: animator %q unavailable on %s %dh",
			animation.Animator, req.Date, req.Time)
		return nil, ErrAnimatorUnavailable
	}

	// 6. Собираем бронирование с денормализацией названия анимации
	booking := &domain.Booking{
		ID:             uuid.NewString(),
		AnimationID:    animation.ID,
		AnimationTitle: animation.Title,
		Date:           req.Date,
		Time:           req.Time,
		TeacherName:    req.TeacherName,
		ClassLevel:     req.ClassLevel,
		Commune:        req.Commune,
		SchoolName:     req.SchoolName,
		PhoneNumber:    req.PhoneNumber,
		Email:          req.Email,
		StudentCount:   req.StudentCount,
		AdultCount:     req.AdultCount,
		BusInfo:        req.BusInfo,
		NoBusRequired:  req.NoBusRequired,
	}
	if booking.NeedsBus() {
		booking.BusStatus = domain.BusStatusPending
	}

	// 7. Сохраняем
	if err := uc.bookingRepo.Save(ctx, booking); err != nil {
		uc.logger.Error("CreateBooking: failed to save booking: %v", err)
		return nil, fmt.Errorf("%w: failed to save booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", booking.ID)

	// 8. Письма отправляются best effort, ошибки не влияют на результат
	uc.sendNotifications(ctx, booking, snap.Settings)

	return &Response{
		ID:             booking.ID,
		AnimationID:    booking.AnimationID,
		AnimationTitle: booking.AnimationTitle,
		Date:           booking.Date,
		Time:           booking.Time,
		TeacherName:    booking.TeacherName,
		ClassLevel:     booking.ClassLevel,
		Commune:        booking.Commune,
		SchoolName:     booking.SchoolName,
		PhoneNumber:    booking.PhoneNumber,
		Email:          booking.Email,
		StudentCount:   booking.StudentCount,
		AdultCount:     booking.AdultCount,
		BusInfo:        booking.BusInfo,
		NoBusRequired:  booking.NoBusRequired,
		BusStatus:      string(booking.BusStatus),
	}, nil
}

// sendNotifications отправляет подтверждение преподавателю и уведомление
// администратору; сбои логируются и не считаются ошибкой бронирования
func (uc *UseCase) sendNotifications(ctx context.Context, b *domain.Booking, settings *domain.AppSettings) {
	if uc.mailerClient == nil {
		return
	}

	params := map[string]string{
		"animationTitle": b.AnimationTitle,
		"date":           b.Date,
		"time":           strconv.Itoa(b.Time) + "h",
		"teacherName":    b.TeacherName,
		"schoolName":     b.SchoolName,
		"commune":        b.Commune,
		"studentCount":   strconv.Itoa(b.StudentCount),
		"adultCount":     strconv.Itoa(b.AdultCount),
	}

	confirmation := &mailer.Message{
		To:       b.Email,
		Subject:  "Confirmation de votre réservation — " + b.AnimationTitle,
		Template: mailer.TemplateBookingConfirmation,
		Params:   params,
	}
	if err := uc.mailerClient.Send(ctx, confirmation); err != nil {
		uc.logger.Warn("CreateBooking: failed to send confirmation to %s: %v", b.Email, err)
	}

	if settings.AdminEmail == "" {
		return
	}
	notification := &mailer.Message{
		To:       settings.AdminEmail,
		Subject:  "Nouvelle réservation — " + b.SchoolName,
		Template: mailer.TemplateAdminNotification,
		Params:   params,
	}
	if err := uc.mailerClient.Send(ctx, notification); err != nil {
		uc.logger.Warn("CreateBooking: failed to notify admin %s: %v", settings.AdminEmail, err)
	}
}
