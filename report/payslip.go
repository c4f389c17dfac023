/*
Package report renders printable views of a computed payroll.

PURPOSE:
  The XML document is for the tax authority; the payslip is for people.
  Payslip lays out the same figures on one A4 page so HR can print it or
  hand it to the employee.

USAGE:
  pdf, err := report.Payslip(doc, result, generic.FromTime(time.Now()))

SEE ALSO:
  - nomina/format.go: currency formatting and summary lines
  - nomina/xml.go: the electronic document built from the same result
*/
package report

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/Hellzyr/Nominer/generic"
	"github.com/Hellzyr/Nominer/nomina"
)

const (
	labelWidth = 120.0
	valueWidth = 60.0
	lineHeight = 7.0
)

// Payslip renders the payroll as a one-page PDF.
func Payslip(doc nomina.Document, r nomina.Result, generatedAt generic.TimePoint) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(generatedAt.Time)
	pdf.SetTitle("Nómina "+doc.Employee.DocumentNumber, true)
	// core fonts are cp1252; translate accents and ñ
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Comprobante de nómina"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	line := func(format string, args ...any) {
		pdf.Cell(0, lineHeight, tr(fmt.Sprintf(format, args...)))
		pdf.Ln(lineHeight)
	}
	line("Empleador: %s (NIT %s)", doc.Employer.LegalName, doc.Employer.TaxID)
	if doc.Employer.Address != "" {
		line("Dirección: %s", doc.Employer.Address)
	}
	line("Empleado: %s, %s %s", doc.Employee.Name, doc.Employee.DocumentType, doc.Employee.DocumentNumber)
	line("Cargo: %s  Contrato: %s  Centro de costo: %s", doc.Employee.Position, doc.Employee.ContractType, doc.Employee.CostCenter)
	period := generatedAt.String()
	if start := doc.Input.ContractStart; start != nil {
		period = start.String() + " a " + period
	}
	line("Periodo: %s  Días trabajados: %d", period, doc.Input.DaysWorked)
	pdf.Ln(4)

	section := func(title string, rows [][2]string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(labelWidth+valueWidth, lineHeight+1, tr(title), "B", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, row := range rows {
			pdf.CellFormat(labelWidth, lineHeight, tr(row[0]), "", 0, "L", false, 0, "")
			pdf.CellFormat(valueWidth, lineHeight, tr(row[1]), "", 1, "R", false, 0, "")
		}
		pdf.Ln(3)
	}

	section("Devengados", [][2]string{
		{"Sueldo", nomina.FormatCOP(r.RegularPay)},
		{"Auxilio de transporte", nomina.FormatCOP(r.TransportAllowance)},
		{"Horas extras", nomina.FormatCOP(r.OvertimePay)},
		{"Recargo nocturno", nomina.FormatCOP(r.NightShiftSurcharge)},
		{"Festivos", nomina.FormatCOP(r.HolidayPay)},
		{"Propinas", nomina.FormatCOP(r.Tips)},
		{"Comisiones", nomina.FormatCOP(r.Commissions)},
		{"Bonificaciones", nomina.FormatCOP(r.Bonuses)},
	})
	section("Deducciones", [][2]string{
		{"Salud (4%)", nomina.FormatCOP(r.HealthDeduction)},
		{"Pensión (4%)", nomina.FormatCOP(r.PensionDeduction)},
		{"Libranzas", nomina.FormatCOP(r.LoanDeductions)},
		{"Retención en la fuente", nomina.FormatCOP(r.WithholdingTax)},
	})
	section("Provisiones", [][2]string{
		{"Cesantías", nomina.FormatCOP(r.SeveranceProvision)},
		{"Intereses sobre cesantías", nomina.FormatCOP(r.SeveranceInterestProvision)},
		{"Prima de servicios", nomina.FormatCOP(r.ServiceBonusProvision)},
		{"Vacaciones", nomina.FormatCOP(r.VacationProvision)},
	})

	if st := r.Settlement; st != nil {
		end := ""
		if doc.Input.ContractEnd != nil {
			end = doc.Input.ContractEnd.String()
		}
		section("Liquidación del contrato", [][2]string{
			{"Fecha de terminación", end},
			{"Días a liquidar", strconv.Itoa(st.DaysToSettle)},
			{"Cesantías liquidadas", nomina.FormatCOP(st.ProportionalSeverance)},
			{"Intereses sobre cesantías", nomina.FormatCOP(st.SeveranceInterest)},
			{"Prima liquidada", nomina.FormatCOP(st.ProportionalServiceBonus)},
			{"Vacaciones liquidadas", nomina.FormatCOP(st.ProportionalVacation)},
			{"Indemnización", nomina.FormatCOP(st.Indemnity)},
			{"Total liquidación", nomina.FormatCOP(st.Total)},
		})
	}

	pdf.SetFont("Helvetica", "B", 12)
	for _, row := range [][2]string{
		{"Total devengado", nomina.FormatCOP(r.TotalEarnings)},
		{"Total deducciones", nomina.FormatCOP(r.TotalDeductions)},
		{"Neto a pagar", nomina.FormatCOP(r.NetPay)},
	} {
		pdf.CellFormat(labelWidth, lineHeight+1, tr(row[0]), "T", 0, "L", false, 0, "")
		pdf.CellFormat(valueWidth, lineHeight+1, tr(row[1]), "T", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render payslip: %w", err)
	}
	return buf.Bytes(), nil
}
