package http

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pilotosfah/pilotos-api/internal/application/dto"
	"github.com/pilotosfah/pilotos-api/internal/domain"
)

func validDonation() dto.DonationRequest {
	return dto.DonationRequest{
		Nombre:      "Ana Pérez",
		Telefono:    "+504 9999-0000",
		Correo:      "ana@example.com",
		Dia:         "2026-11-02",
		Horario:     "09:30",
		Descripcion: "Dos cajas de pelotas",
	}
}

func TestValidateStruct_DonacionValida(t *testing.T) {
	assert.NoError(t, validateStruct(validDonation()))
}

func TestValidateStruct_CampoConNombreJSON(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*dto.DonationRequest)
		field   string
		mensaje string
	}{
		{"correo", func(d *dto.DonationRequest) { d.Correo = "no-es-correo" }, "correo", "correo inválido"},
		{"día", func(d *dto.DonationRequest) { d.Dia = "02/11/2026" }, "dia", "formato esperado YYYY-MM-DD"},
		{"horario", func(d *dto.DonationRequest) { d.Horario = "25:00" }, "horario", "formato esperado HH:MM"},
		{"obligatorio", func(d *dto.DonationRequest) { d.Nombre = "" }, "nombre", "es obligatorio"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDonation()
			tc.mutate(&d)

			err := validateStruct(d)
			require.Error(t, err)
			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tc.field, ve.Field)
			assert.Equal(t, tc.mensaje, ve.Message)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestValidateStruct_RolFueraDelVocabulario(t *testing.T) {
	err := validateStruct(dto.SetRoleRequest{Rol: "superadmin"})
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "rol", ve.Field)
	assert.Contains(t, ve.Message, "admin-calendario")
}
