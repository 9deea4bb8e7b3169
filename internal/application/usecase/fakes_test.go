package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/pilotosfah/pilotos-api/internal/application/notify"
	"github.com/pilotosfah/pilotos-api/internal/application/ports"
	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
)

// memStorage almacenamiento en memoria que recuerda subidas y borrados.
type memStorage struct {
	mu       sync.Mutex
	uploaded map[string][]byte
	deleted  []string
	fail     bool
}

func newMemStorage() *memStorage { return &memStorage{uploaded: map[string][]byte{}} }

func (s *memStorage) Upload(ctx context.Context, path string, content []byte, contentType string) (*ports.StoredObject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, errors.New("storage caído")
	}
	s.uploaded[path] = content
	return &ports.StoredObject{Path: path, URL: "https://cdn.test/public/" + path}, nil
}

func (s *memStorage) DeleteByURL(ctx context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, url)
	return nil
}

// memSite repositorio de sitio en memoria; failKey fuerza error en esa clave.
type memSite struct {
	texts   map[string]*entity.SiteText
	images  map[string]*entity.SiteImage
	contact *entity.ContactInfo
	failKey string
}

func newMemSite() *memSite {
	return &memSite{texts: map[string]*entity.SiteText{}, images: map[string]*entity.SiteImage{}}
}

func (m *memSite) ListTexts(ctx context.Context, seccion string) ([]*entity.SiteText, error) {
	var out []*entity.SiteText
	for k, t := range m.texts {
		if strings.HasPrefix(k, seccion+"/") {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memSite) GetText(ctx context.Context, seccion, clave string) (*entity.SiteText, error) {
	return m.texts[seccion+"/"+clave], nil
}

func (m *memSite) UpsertText(ctx context.Context, t *entity.SiteText) (*entity.SiteText, error) {
	if t.Clave == m.failKey {
		return nil, errors.New("deadlock detected")
	}
	cp := *t
	cp.UpdatedAt = time.Now()
	m.texts[t.Seccion+"/"+t.Clave] = &cp
	return &cp, nil
}

func (m *memSite) ListImages(ctx context.Context, seccion string) ([]*entity.SiteImage, error) {
	var out []*entity.SiteImage
	for k, img := range m.images {
		if strings.HasPrefix(k, seccion+"/") {
			out = append(out, img)
		}
	}
	return out, nil
}

func (m *memSite) GetImage(ctx context.Context, seccion, tipo string) (*entity.SiteImage, error) {
	return m.images[seccion+"/"+tipo], nil
}

func (m *memSite) UpsertImage(ctx context.Context, img *entity.SiteImage) (*entity.SiteImage, error) {
	cp := *img
	cp.UpdatedAt = time.Now()
	m.images[img.Seccion+"/"+img.Tipo] = &cp
	return &cp, nil
}

func (m *memSite) GetContact(ctx context.Context) (*entity.ContactInfo, error) { return m.contact, nil }

func (m *memSite) UpsertContact(ctx context.Context, c *entity.ContactInfo) (*entity.ContactInfo, error) {
	cp := *c
	now := time.Now()
	cp.UpdatedAt = &now
	m.contact = &cp
	return &cp, nil
}

// memDonations repositorio de donaciones en memoria.
type memDonations struct {
	products  []*entity.DonationProduct
	donations []*entity.Donation
}

func (m *memDonations) CreateProduct(ctx context.Context, p *entity.DonationProduct) error {
	p.ID = int64(len(m.products) + 1)
	m.products = append(m.products, p)
	return nil
}

func (m *memDonations) ListProducts(ctx context.Context) ([]*entity.DonationProduct, error) {
	return m.products, nil
}

func (m *memDonations) UpdateProduct(ctx context.Context, p *entity.DonationProduct) error { return nil }

func (m *memDonations) DeleteProduct(ctx context.Context, id int64) (*entity.DonationProduct, error) {
	return nil, nil
}

func (m *memDonations) Create(ctx context.Context, d *entity.Donation) error {
	d.ID = int64(len(m.donations) + 1)
	m.donations = append(m.donations, d)
	return nil
}

func (m *memDonations) List(ctx context.Context) ([]*entity.Donation, error) { return m.donations, nil }

func (m *memDonations) UpdateStatus(ctx context.Context, id int64, estado string) error { return nil }

// syncTasks ejecuta la tarea en línea para poder afirmar sobre su efecto.
type syncTasks struct{ names []string }

func (s *syncTasks) Dispatch(name string, task func(ctx context.Context) error) {
	s.names = append(s.names, name)
	_ = task(context.Background())
}

type spyForms struct {
	donations []notify.DonationReceived
	contacts  []notify.ContactMessage
}

func (s *spyForms) NotifyDonation(ctx context.Context, d notify.DonationReceived) error {
	s.donations = append(s.donations, d)
	return nil
}

func (s *spyForms) NotifyContactForm(ctx context.Context, m notify.ContactMessage) error {
	s.contacts = append(s.contacts, m)
	return nil
}
