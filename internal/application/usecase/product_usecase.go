package usecase

import (
	"context"
	"strings"

	"github.com/pilotosfah/pilotos-api/internal/application/dto"
	"github.com/pilotosfah/pilotos-api/internal/domain"
	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
	"github.com/pilotosfah/pilotos-api/internal/domain/repository"
)

// ProductUseCase catálogo de la tienda.
type ProductUseCase struct {
	repo   repository.ProductRepository
	images *UploadUseCase
}

// NewProductUseCase construye el caso de uso. images puede ser nil si no hay almacenamiento.
func NewProductUseCase(repo repository.ProductRepository, images *UploadUseCase) *ProductUseCase {
	return &ProductUseCase{repo: repo, images: images}
}

// List productos ordenados por id.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Productos: out}, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NewNotFound("Producto no encontrado")
	}
	return toProductResponse(p), nil
}

// Create crea un producto; si viene imagen se sube antes de insertar.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest, img *FileInput) (*dto.ProductResponse, error) {
	p, err := productFromRequest(in)
	if err != nil {
		return nil, err
	}
	if img != nil && uc.images != nil {
		url, err := uc.images.store(ctx, "productos", *img)
		if err != nil {
			return nil, err
		}
		p.ImageURL = url
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Update reemplaza los datos del producto. Una imagen nueva sustituye a la anterior.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest, img *FileInput) (*dto.ProductResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.NewNotFound("Producto no encontrado")
	}
	p, err := productFromRequest(in)
	if err != nil {
		return nil, err
	}
	p.ID = id
	if p.ImageURL == "" {
		p.ImageURL = current.ImageURL
	}
	if img != nil && uc.images != nil {
		url, err := uc.images.store(ctx, "productos", *img)
		if err != nil {
			return nil, err
		}
		p.ImageURL = url
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	if uc.images != nil && current.ImageURL != "" && current.ImageURL != p.ImageURL {
		uc.images.discard(ctx, current.ImageURL)
	}
	return toProductResponse(p), nil
}

// Delete elimina el producto y su imagen.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.NewNotFound("Producto no encontrado")
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	if uc.images != nil {
		uc.images.discard(ctx, current.ImageURL)
	}
	return nil
}

func productFromRequest(in dto.ProductRequest) (*entity.Product, error) {
	nombre := strings.TrimSpace(in.NombreProducto)
	if nombre == "" {
		return nil, domain.NewValidationError("nombre_producto", "el nombre es obligatorio")
	}
	if in.PrecioUnitario.IsNegative() {
		return nil, domain.NewValidationError("precio_unitario", "el precio no puede ser negativo")
	}
	if in.Cantidad < 0 {
		return nil, domain.NewValidationError("cantidad", "la cantidad no puede ser negativa")
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.ProductStatusDisponible
	}
	return &entity.Product{
		Nombre:         nombre,
		Descripcion:    strings.TrimSpace(in.Descripcion),
		PrecioUnitario: in.PrecioUnitario,
		Cantidad:       in.Cantidad,
		Talla:          strings.TrimSpace(in.Talla),
		Estado:         estado,
		ImageURL:       strings.TrimSpace(in.ImageURL),
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		IDProducto:     p.ID,
		NombreProducto: p.Nombre,
		Descripcion:    p.Descripcion,
		PrecioUnitario: p.PrecioUnitario,
		Cantidad:       p.Cantidad,
		Talla:          p.Talla,
		Estado:         p.Estado,
		ImageURL:       p.ImageURL,
	}
}
