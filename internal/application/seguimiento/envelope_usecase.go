package seguimiento

import (
	"context"
	"time"

	"github.com/jhoicas/seguimiento-contratos/internal/application/dto"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/access"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/progress"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/repository"
)

// EnvelopeUseCase registra adiciones y modificaciones de forma transaccional:
// bloqueo de la fila del contrato (SELECT FOR UPDATE), mutación de la envolvente y
// anexado del registro en la misma unidad, con Commit/Rollback.
type EnvelopeUseCase struct {
	txRunner     TxRunner
	contratoRepo repository.ContratoRepository
}

// NewEnvelopeUseCase construye el caso de uso.
func NewEnvelopeUseCase(txRunner TxRunner, contratoRepo repository.ContratoRepository) *EnvelopeUseCase {
	return &EnvelopeUseCase{txRunner: txRunner, contratoRepo: contratoRepo}
}

// CreateAdicion suma ValorAdicion al valor total del contrato y anexa la adición.
//
// Retorna:
//   - domain.ErrNotFound    si el contrato no existe.
//   - domain.ErrForbidden   si el principal no tiene acceso al contrato.
//   - domain.ErrValidation  si el valor no es positivo o la fecha es inválida.
func (uc *EnvelopeUseCase) CreateAdicion(ctx context.Context, p access.Principal, contratoID int64, in dto.CreateAdicionRequest) (*dto.AdicionResult, error) {
	if _, err := loadContrato(ctx, uc.contratoRepo, p, contratoID); err != nil {
		return nil, err
	}
	fecha, err := parseFecha("fecha", in.Fecha)
	if err != nil {
		return nil, err
	}
	adicion := &entity.Adicion{
		ValorAdicion:  in.ValorAdicion,
		Fecha:         fecha,
		Observaciones: in.Observaciones,
		CreatedBy:     p.Cedula,
	}

	var updated *entity.Contrato
	err = uc.txRunner.Run(ctx, func(
		contratoRepo repository.ContratoRepository,
		adicionRepo repository.AdicionRepository,
		_ repository.ModificacionRepository,
	) error {
		// Bloquea la fila: adiciones concurrentes sobre el mismo contrato se serializan aquí
		c, err := contratoRepo.GetForUpdate(ctx, contratoID)
		if err != nil {
			return err
		}
		if err := progress.AplicarAdicion(c, adicion); err != nil {
			return err
		}
		c.UpdatedAt = time.Now()
		if err := contratoRepo.UpdateEnvelope(ctx, c); err != nil {
			return err
		}
		if err := adicionRepo.Append(ctx, adicion); err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.AdicionResult{
		Adicion:  *toAdicionResponse(adicion),
		Contrato: toEnvelopeResponse(updated),
	}, nil
}

// CreateModificacion registra una prórroga, suspensión o modificación. PRORROGA y
// SUSPENSION mueven la fecha de terminación actual a FechaFinal (la última gana).
func (uc *EnvelopeUseCase) CreateModificacion(ctx context.Context, p access.Principal, contratoID int64, in dto.CreateModificacionRequest) (*dto.ModificacionResult, error) {
	if _, err := loadContrato(ctx, uc.contratoRepo, p, contratoID); err != nil {
		return nil, err
	}
	inicio, err := parseFecha("fecha_inicio", in.FechaInicio)
	if err != nil {
		return nil, err
	}
	final, err := parseFecha("fecha_final", in.FechaFinal)
	if err != nil {
		return nil, err
	}
	modificacion := &entity.Modificacion{
		Tipo:          in.Tipo,
		FechaInicio:   inicio,
		FechaFinal:    final,
		Observaciones: in.Observaciones,
		CreatedBy:     p.Cedula,
	}

	var updated *entity.Contrato
	err = uc.txRunner.Run(ctx, func(
		contratoRepo repository.ContratoRepository,
		_ repository.AdicionRepository,
		modificacionRepo repository.ModificacionRepository,
	) error {
		c, err := contratoRepo.GetForUpdate(ctx, contratoID)
		if err != nil {
			return err
		}
		if err := progress.AplicarModificacion(c, modificacion); err != nil {
			return err
		}
		if modificacion.AfectaPlazo() {
			c.UpdatedAt = time.Now()
			if err := contratoRepo.UpdateEnvelope(ctx, c); err != nil {
				return err
			}
		}
		if err := modificacionRepo.Append(ctx, modificacion); err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.ModificacionResult{
		Modificacion: *toModificacionResponse(modificacion),
		Contrato:     toEnvelopeResponse(updated),
	}, nil
}
