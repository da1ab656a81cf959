package seguimiento

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/seguimiento-contratos/internal/application/dto"
	"github.com/jhoicas/seguimiento-contratos/internal/domain"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/access"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/progress"
)

// RegistryUseCase alta y consulta de contratos, cuos y actividades.
type RegistryUseCase struct {
	repos Repositories
}

// NewRegistryUseCase construye el caso de uso.
func NewRegistryUseCase(repos Repositories) *RegistryUseCase {
	return &RegistryUseCase{repos: repos}
}

// CreateContrato registra un contrato nuevo; solo ADMIN. ValorTotal y
// FechaTerminacionActual arrancan iguales a la línea base.
func (uc *RegistryUseCase) CreateContrato(ctx context.Context, p access.Principal, in dto.CreateContratoRequest) (*dto.ContratoResponse, error) {
	if !p.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	numero := strings.TrimSpace(in.NumeroContrato)
	if numero == "" {
		return nil, domain.Invalid("numero_contrato", "es requerido")
	}
	if in.ValorInicial.IsNegative() {
		return nil, domain.Invalid("valor_inicial", "no puede ser negativo")
	}
	if err := progress.ValidarEscala("valor_inicial", in.ValorInicial, progress.EscalaMonetaria); err != nil {
		return nil, err
	}
	inicio, err := parseFecha("fecha_inicio", in.FechaInicio)
	if err != nil {
		return nil, err
	}
	fin, err := parseFecha("fecha_terminacion", in.FechaTerminacion)
	if err != nil {
		return nil, err
	}
	if fin.Before(inicio) {
		return nil, domain.Invalid("fecha_terminacion", "no puede ser anterior a fecha_inicio")
	}
	supervisor, err := uc.repos.Usuarios.GetByCedula(ctx, in.UsuarioCedula)
	if err != nil {
		return nil, fmt.Errorf("obtener supervisor: %w", err)
	}
	if supervisor == nil {
		return nil, domain.Invalid("usuario_cedula", "no corresponde a un usuario registrado")
	}

	now := time.Now()
	c := &entity.Contrato{
		NumeroContrato:          numero,
		IdentificadorSimple:     in.IdentificadorSimple,
		Objeto:                  in.Objeto,
		Contratista:             in.Contratista,
		ValorInicial:            in.ValorInicial,
		ValorTotal:              in.ValorInicial,
		FechaInicio:             inicio,
		FechaTerminacionInicial: fin,
		FechaTerminacionActual:  fin,
		Estado:                  entity.EstadoContratoActivo,
		UsuarioCedula:           supervisor.Cedula,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	if err := uc.repos.Contratos.Create(ctx, c); err != nil {
		return nil, err
	}
	return toContratoResponse(c), nil
}

// GetContrato obtiene un contrato visible para el principal.
func (uc *RegistryUseCase) GetContrato(ctx context.Context, p access.Principal, id int64) (*dto.ContratoResponse, error) {
	c, err := loadContrato(ctx, uc.repos.Contratos, p, id)
	if err != nil {
		return nil, err
	}
	return toContratoResponse(c), nil
}

// ListContratos lista los contratos del supervisor, o todos si es ADMIN.
func (uc *RegistryUseCase) ListContratos(ctx context.Context, p access.Principal, page dto.PageRequest) (*dto.ContratoListResponse, error) {
	page.DefaultPage()
	list, err := uc.repos.Contratos.List(ctx, access.Scope(p), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContratoResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toContratoResponse(c))
	}
	return &dto.ContratoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// CreateCuo registra un frente de obra dentro del contrato.
func (uc *RegistryUseCase) CreateCuo(ctx context.Context, p access.Principal, contratoID int64, in dto.CreateCuoRequest) (*dto.CuoResponse, error) {
	c, err := loadContrato(ctx, uc.repos.Contratos, p, contratoID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Numero) == "" {
		return nil, domain.Invalid("numero", "es requerido")
	}
	if in.Latitud < -90 || in.Latitud > 90 || in.Longitud < -180 || in.Longitud > 180 {
		return nil, domain.Invalid("coordenadas", "fuera de rango")
	}
	cuo := &entity.Cuo{
		ContratoID:  c.ID,
		Numero:      strings.TrimSpace(in.Numero),
		Latitud:     in.Latitud,
		Longitud:    in.Longitud,
		Comuna:      in.Comuna,
		Barrio:      in.Barrio,
		Descripcion: in.Descripcion,
		CreatedAt:   time.Now(),
	}
	if err := uc.repos.Cuos.Create(ctx, cuo); err != nil {
		return nil, err
	}
	return toCuoResponse(cuo), nil
}

// ListCuos lista los frentes de obra del contrato.
func (uc *RegistryUseCase) ListCuos(ctx context.Context, p access.Principal, contratoID int64) ([]dto.CuoResponse, error) {
	if _, err := loadContrato(ctx, uc.repos.Contratos, p, contratoID); err != nil {
		return nil, err
	}
	list, err := uc.repos.Cuos.ListByContrato(ctx, contratoID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CuoResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCuoResponse(c))
	}
	return items, nil
}

// CreateActividad registra una actividad medible dentro de un cuo.
func (uc *RegistryUseCase) CreateActividad(ctx context.Context, p access.Principal, cuoID int64, in dto.CreateActividadRequest) (*dto.ActividadResponse, error) {
	cuo, c, err := loadCuo(ctx, uc.repos, p, cuoID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.Invalid("nombre", "es requerido")
	}
	if in.MetaFisica.IsNegative() {
		return nil, domain.Invalid("meta_fisica", "no puede ser negativa")
	}
	if in.ProyectadoFinanciero.IsNegative() {
		return nil, domain.Invalid("proyectado_financiero", "no puede ser negativo")
	}
	if err := progress.ValidarEscala("meta_fisica", in.MetaFisica, progress.EscalaFisica); err != nil {
		return nil, err
	}
	if err := progress.ValidarEscala("proyectado_financiero", in.ProyectadoFinanciero, progress.EscalaMonetaria); err != nil {
		return nil, err
	}
	a := &entity.Actividad{
		CuoID:                cuo.ID,
		ContratoID:           c.ID,
		Nombre:               strings.TrimSpace(in.Nombre),
		MetaFisica:           in.MetaFisica,
		ProyectadoFinanciero: in.ProyectadoFinanciero,
		UnidadesAvance:       in.UnidadesAvance,
		CreatedAt:            time.Now(),
	}
	if err := uc.repos.Actividades.Create(ctx, a); err != nil {
		return nil, err
	}
	return toActividadResponse(a), nil
}
