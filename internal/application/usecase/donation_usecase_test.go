package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pilotosfah/pilotos-api/internal/application/dto"
	"github.com/pilotosfah/pilotos-api/internal/domain"
)

func validDonation() dto.DonationRequest {
	return dto.DonationRequest{
		Nombre: "Luis", Telefono: "9999-0000", Correo: "luis@x.com",
		Dia: "2026-11-02", Horario: "09:30", Descripcion: "Dos guantes",
	}
}

func TestRegisterDonation_GuardaYNotifica(t *testing.T) {
	repo := &memDonations{}
	spy := &spyForms{}
	tasks := &syncTasks{}
	uc := NewDonationUseCase(repo, spy, tasks)

	out, err := uc.Register(context.Background(), validDonation())
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.IDDonacion)
	assert.Equal(t, "Pendiente", out.Estado)
	assert.Equal(t, []string{"notificar-donacion"}, tasks.names)
	require.Len(t, spy.donations, 1)
	assert.Equal(t, "2026-11-02", spy.donations[0].Dia)
}

func TestRegisterDonation_HorarioInvalido(t *testing.T) {
	repo := &memDonations{}
	uc := NewDonationUseCase(repo, nil, nil)
	in := validDonation()
	in.Horario = "25:00"

	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.donations)
}

func TestRegisterDonation_FechaInvalida(t *testing.T) {
	uc := NewDonationUseCase(&memDonations{}, nil, nil)
	in := validDonation()
	in.Dia = "02/11/2026"

	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubmitContact_EncolaCorreos(t *testing.T) {
	spy := &spyForms{}
	uc := NewContactUseCase(spy, &syncTasks{}, nil)

	require.NoError(t, uc.Submit(context.Background(), dto.ContactFormRequest{Nombre: "Eva", Correo: "eva@x.com", Mensaje: "Hola"}))
	require.Len(t, spy.contacts, 1)
	assert.Equal(t, "eva@x.com", spy.contacts[0].Correo)
}
