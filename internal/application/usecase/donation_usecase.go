package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/pilotosfah/pilotos-api/internal/application/dto"
	"github.com/pilotosfah/pilotos-api/internal/application/notify"
	"github.com/pilotosfah/pilotos-api/internal/domain"
	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
	"github.com/pilotosfah/pilotos-api/internal/domain/repository"
)

// TaskDispatcher ejecuta tareas fuera del ciclo de la petición.
type TaskDispatcher interface {
	Dispatch(name string, task func(ctx context.Context) error)
}

// FormNotifier avisos de los formularios públicos.
type FormNotifier interface {
	NotifyDonation(ctx context.Context, d notify.DonationReceived) error
	NotifyContactForm(ctx context.Context, m notify.ContactMessage) error
}

var reHorario = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// DonationUseCase artículos para donar y solicitudes de donación.
type DonationUseCase struct {
	repo     repository.DonationRepository
	notifier FormNotifier
	tasks    TaskDispatcher
	now      func() time.Time
}

// NewDonationUseCase construye el caso de uso. notifier y tasks pueden ser nil.
func NewDonationUseCase(repo repository.DonationRepository, notifier FormNotifier, tasks TaskDispatcher) *DonationUseCase {
	return &DonationUseCase{repo: repo, notifier: notifier, tasks: tasks, now: time.Now}
}

// ListProducts artículos publicados.
func (uc *DonationUseCase) ListProducts(ctx context.Context) ([]dto.DonationProductResponse, error) {
	list, err := uc.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DonationProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toDonationProductResponse(p))
	}
	return out, nil
}

// CreateProduct publica un artículo.
func (uc *DonationUseCase) CreateProduct(ctx context.Context, in dto.DonationProductRequest) (*dto.DonationProductResponse, error) {
	p, err := donationProductFromRequest(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	r := toDonationProductResponse(p)
	return &r, nil
}

// UpdateProduct modifica un artículo.
func (uc *DonationUseCase) UpdateProduct(ctx context.Context, id int64, in dto.DonationProductRequest) (*dto.DonationProductResponse, error) {
	p, err := donationProductFromRequest(in)
	if err != nil {
		return nil, err
	}
	p.ID = id
	if err := uc.repo.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}
	r := toDonationProductResponse(p)
	return &r, nil
}

// DeleteProduct elimina un artículo y devuelve lo eliminado.
func (uc *DonationUseCase) DeleteProduct(ctx context.Context, id int64) (*dto.DonationProductResponse, error) {
	p, err := uc.repo.DeleteProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NewNotFound("Producto no encontrado")
	}
	r := toDonationProductResponse(p)
	return &r, nil
}

// Register guarda la solicitud y avisa por correo sin esperar el envío.
func (uc *DonationUseCase) Register(ctx context.Context, in dto.DonationRequest) (*dto.DonationResponse, error) {
	dia, err := time.Parse("2006-01-02", strings.TrimSpace(in.Dia))
	if err != nil {
		return nil, domain.NewValidationError("dia", "formato esperado YYYY-MM-DD")
	}
	horario := ownedTrim(in.Horario)
	if !reHorario.MatchString(horario) {
		return nil, domain.NewValidationError("horario", "formato esperado HH:MM")
	}
	d := &entity.Donation{
		Nombre:      ownedTrim(in.Nombre),
		Telefono:    ownedTrim(in.Telefono),
		Correo:      ownedTrim(in.Correo),
		Dia:         dia,
		Horario:     horario,
		Descripcion: ownedTrim(in.Descripcion),
		Estado:      entity.DonationStatusPendiente,
		CreatedAt:   uc.now(),
	}
	if d.Nombre == "" || d.Correo == "" || d.Descripcion == "" {
		return nil, domain.NewValidationError("", "Faltan campos obligatorios")
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	if uc.notifier != nil && uc.tasks != nil {
		ev := notify.DonationReceived{
			Nombre: d.Nombre, Telefono: d.Telefono, Correo: d.Correo,
			Dia: d.Dia.Format("2006-01-02"), Horario: d.Horario, Descripcion: d.Descripcion,
			RecibidaEn: d.CreatedAt,
		}
		uc.tasks.Dispatch("notificar-donacion", func(tctx context.Context) error {
			return uc.notifier.NotifyDonation(tctx, ev)
		})
	}
	r := toDonationResponse(d)
	return &r, nil
}

// List solicitudes de donación, la más reciente primero.
func (uc *DonationUseCase) List(ctx context.Context) ([]dto.DonationResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DonationResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDonationResponse(d))
	}
	return out, nil
}

// UpdateStatus cambia el estado de una solicitud.
func (uc *DonationUseCase) UpdateStatus(ctx context.Context, id int64, in dto.DonationStatusRequest) error {
	estado := strings.TrimSpace(in.Estado)
	if estado == "" {
		return domain.NewValidationError("estado", "el estado es obligatorio")
	}
	return uc.repo.UpdateStatus(ctx, id, estado)
}

func donationProductFromRequest(in dto.DonationProductRequest) (*entity.DonationProduct, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, domain.NewValidationError("nombre", "el nombre es obligatorio")
	}
	estado := strings.TrimSpace(in.Estado)
	if estado == "" {
		estado = "activo"
	}
	return &entity.DonationProduct{
		Nombre:      nombre,
		Descripcion: strings.TrimSpace(in.Descripcion),
		Imagen:      strings.TrimSpace(in.Imagen),
		Estado:      estado,
	}, nil
}

func toDonationProductResponse(p *entity.DonationProduct) dto.DonationProductResponse {
	return dto.DonationProductResponse{ID: p.ID, Nombre: p.Nombre, Descripcion: p.Descripcion, Imagen: p.Imagen, Estado: p.Estado}
}

func toDonationResponse(d *entity.Donation) dto.DonationResponse {
	return dto.DonationResponse{
		IDDonacion:  d.ID,
		Nombre:      d.Nombre,
		Telefono:    d.Telefono,
		Correo:      d.Correo,
		Dia:         d.Dia.Format("2006-01-02"),
		Horario:     d.Horario,
		Descripcion: d.Descripcion,
		Estado:      d.Estado,
		CreatedAt:   d.CreatedAt,
	}
}
