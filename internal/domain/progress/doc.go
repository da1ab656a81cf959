// Package progress contiene las reglas de contabilidad de avance (servicio de dominio):
// cómo una secuencia ordenada de reportes se convierte en cifras acumuladas por contrato
// y por actividad, y cómo adiciones y modificaciones mutan la envolvente del contrato.
//
// Todas las funciones son puras: reciben el estado persistido y devuelven el resultado,
// nada derivado se guarda.
package progress
