package seguimiento

import (
	"time"

	"github.com/jhoicas/seguimiento-contratos/internal/application/dto"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/progress"
)

func fechaString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dto.DateLayout)
}

func toContratoResponse(c *entity.Contrato) *dto.ContratoResponse {
	if c == nil {
		return nil
	}
	return &dto.ContratoResponse{
		ID:                      c.ID,
		NumeroContrato:          c.NumeroContrato,
		IdentificadorSimple:     c.IdentificadorSimple,
		Objeto:                  c.Objeto,
		Contratista:             c.Contratista,
		ValorInicial:            c.ValorInicial,
		ValorTotal:              c.ValorTotal,
		FechaInicio:             fechaString(c.FechaInicio),
		FechaTerminacionInicial: fechaString(c.FechaTerminacionInicial),
		FechaTerminacionActual:  fechaString(c.FechaTerminacionActual),
		Estado:                  c.Estado,
		UsuarioCedula:           c.UsuarioCedula,
		CreatedAt:               c.CreatedAt,
		UpdatedAt:               c.UpdatedAt,
	}
}

func toEnvelopeResponse(c *entity.Contrato) dto.EnvelopeResponse {
	return dto.EnvelopeResponse{
		ContratoID:              c.ID,
		ValorInicial:            c.ValorInicial,
		ValorTotal:              c.ValorTotal,
		FechaTerminacionInicial: fechaString(c.FechaTerminacionInicial),
		FechaTerminacionActual:  fechaString(c.FechaTerminacionActual),
	}
}

func toAdicionResponse(a *entity.Adicion) *dto.AdicionResponse {
	return &dto.AdicionResponse{
		ID:            a.ID,
		ContratoID:    a.ContratoID,
		ValorAdicion:  a.ValorAdicion,
		Fecha:         fechaString(a.Fecha),
		Observaciones: a.Observaciones,
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
	}
}

func toModificacionResponse(m *entity.Modificacion) *dto.ModificacionResponse {
	return &dto.ModificacionResponse{
		ID:            m.ID,
		ContratoID:    m.ContratoID,
		Tipo:          m.Tipo,
		FechaInicio:   fechaString(m.FechaInicio),
		FechaFinal:    fechaString(m.FechaFinal),
		Duracion:      m.Duracion,
		Observaciones: m.Observaciones,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}

func toSeguimientoGeneralResponse(s *entity.SeguimientoGeneral) *dto.SeguimientoGeneralResponse {
	return &dto.SeguimientoGeneralResponse{
		ID:               s.ID,
		ContratoID:       s.ContratoID,
		AvanceFinanciero: s.AvanceFinanciero,
		AvanceFisico:     s.AvanceFisico,
		Observaciones:    s.Observaciones,
		CreatedAt:        s.CreatedAt,
		CreatedBy:        s.CreatedBy,
	}
}

func toContratoProgressResponse(p progress.ContratoProgress) dto.ContratoProgressResponse {
	return dto.ContratoProgressResponse{
		ContratoID:             p.ContratoID,
		Reportado:              p.Reportado,
		ValorInicial:           p.ValorInicial,
		ValorTotal:             p.ValorTotal,
		ValorEjecutado:         p.ValorEjecutado,
		ValorPorEjecutar:       p.ValorPorEjecutar,
		AvanceFisico:           p.AvanceFisico,
		PorcentajeFinanciero:   p.PorcentajeFinanciero,
		DiferenciaAvance:       p.DiferenciaAvance,
		EstadoAvance:           p.EstadoAvance,
		FechaTerminacionActual: fechaString(p.FechaTerminacionActual),
		Observaciones:          p.Observaciones,
		UltimoReporte:          p.UltimoReporte,
		CantidadReportes:       p.CantidadReportes,
	}
}

func toSeguimientoActividadResponse(s *entity.SeguimientoActividad) *dto.SeguimientoActividadResponse {
	return &dto.SeguimientoActividadResponse{
		ID:                     s.ID,
		ActividadID:            s.ActividadID,
		AvanceFisico:           s.AvanceFisico,
		CostoAproximado:        s.CostoAproximado,
		DescripcionSeguimiento: s.DescripcionSeguimiento,
		ProyeccionActividades:  s.ProyeccionActividades,
		CreatedAt:              s.CreatedAt,
		CreatedBy:              s.CreatedBy,
	}
}

func toActividadProgressResponse(p progress.ActividadProgress) dto.ActividadProgressResponse {
	out := dto.ActividadProgressResponse{
		Tipo: p.Tipo,
		Actividad: dto.ActividadMetadataResponse{
			ActividadID:          p.Metadata.ActividadID,
			CuoID:                p.Metadata.CuoID,
			ContratoID:           p.Metadata.ContratoID,
			Nombre:               p.Metadata.Nombre,
			MetaFisica:           p.Metadata.MetaFisica,
			ProyectadoFinanciero: p.Metadata.ProyectadoFinanciero,
			UnidadesAvance:       p.Metadata.UnidadesAvance,
		},
		AvanceAcumulado: p.Acumulado.AvanceAcumulado,
		CostoAcumulado:  p.Acumulado.CostoAcumulado,
		PorcentajeMeta:  p.Acumulado.PorcentajeMeta,
		PorcentajeCosto: p.Acumulado.PorcentajeCosto,
	}
	if p.Reporte == nil {
		return out
	}
	historial := make([]dto.SeguimientoActividadResponse, 0, len(p.Reporte.Historial))
	for _, h := range p.Reporte.Historial {
		s := h.Seguimiento
		item := toSeguimientoActividadResponse(&s)
		avance, costo := h.AvanceAcumulado, h.CostoAcumulado
		item.AvanceAcumulado = &avance
		item.CostoAcumulado = &costo
		historial = append(historial, *item)
	}
	out.Reporte = &dto.ReporteActividadResponse{
		DescripcionSeguimiento: p.Reporte.DescripcionSeguimiento,
		ProyeccionActividades:  p.Reporte.ProyeccionActividades,
		UltimoReporte:          p.Reporte.UltimoReporte,
		CantidadReportes:       p.Reporte.CantidadReportes,
		Historial:              historial,
	}
	return out
}

func toHistorialResponse(contratoID int64, eventos []progress.EventoHistorial) *dto.HistorialResponse {
	items := make([]dto.HistorialEntryResponse, 0, len(eventos))
	for _, e := range eventos {
		item := dto.HistorialEntryResponse{Tipo: e.Tipo, CreatedAt: e.CreatedAt}
		switch e.Tipo {
		case progress.EventoAdicion:
			item.Adicion = toAdicionResponse(e.Adicion)
		case progress.EventoModificacion:
			item.Modificacion = toModificacionResponse(e.Modificacion)
		case progress.EventoSeguimiento:
			item.Seguimiento = toSeguimientoGeneralResponse(e.Seguimiento)
		}
		items = append(items, item)
	}
	return &dto.HistorialResponse{ContratoID: contratoID, Items: items}
}

func toCuoResponse(c *entity.Cuo) *dto.CuoResponse {
	return &dto.CuoResponse{
		ID:                  c.ID,
		ContratoID:          c.ContratoID,
		Numero:              c.Numero,
		Latitud:             c.Latitud,
		Longitud:            c.Longitud,
		Comuna:              c.Comuna,
		Barrio:              c.Barrio,
		Descripcion:         c.Descripcion,
		CantidadActividades: c.CantidadActividades,
		CreatedAt:           c.CreatedAt,
	}
}

func toActividadResponse(a *entity.Actividad) *dto.ActividadResponse {
	return &dto.ActividadResponse{
		ID:                   a.ID,
		CuoID:                a.CuoID,
		ContratoID:           a.ContratoID,
		Nombre:               a.Nombre,
		MetaFisica:           a.MetaFisica,
		ProyectadoFinanciero: a.ProyectadoFinanciero,
		UnidadesAvance:       a.UnidadesAvance,
		CreatedAt:            a.CreatedAt,
	}
}
