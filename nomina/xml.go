package nomina

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/Hellzyr/Nominer/generic"
)

// =============================================================================
// XML SERIALIZER - DIAN-style electronic payroll document
// =============================================================================

const (
	xmlNamespace    = "http://facturaelectronica.dian.gov.co/dian/apn"
	xsiNamespace    = "http://www.w3.org/2001/XMLSchema-instance"
	xmlVersion      = "1.0"
	defaultDocument = "1"
)

// Serializer renders a computed payroll as XML. GeneratedAt fills the
// periodoFin attribute; it is passed in rather than read from the clock so
// the same document and result always produce the same bytes.
type Serializer struct {
	GeneratedAt generic.TimePoint
	Number      string // numeroNomina, "1" when empty
}

// Serialize renders the document. Money is rounded to whole pesos here and
// nowhere else. A zero GeneratedAt is an error.
func (s Serializer) Serialize(doc Document, r Result) ([]byte, error) {
	if s.GeneratedAt.IsZero() {
		return nil, fmt.Errorf("serialize payroll: generation date is required")
	}
	number := s.Number
	if number == "" {
		number = defaultDocument
	}

	root := xmlNomina{
		XSI:           xsiNamespace,
		XMLNS:         xmlNamespace,
		Version:       xmlVersion,
		PeriodStart:   optionalDate(doc.Input.ContractStart),
		PeriodEnd:     s.GeneratedAt.String(),
		PayrollNumber: number,
		Employer: xmlEmployer{
			TaxID:        doc.Employer.TaxID,
			LegalName:    doc.Employer.LegalName,
			Address:      doc.Employer.Address,
			Municipality: doc.Employer.Municipality,
			PostalCode:   doc.Employer.PostalCode,
		},
		Employee: xmlEmployee{
			DocumentType:   doc.Employee.DocumentType,
			DocumentNumber: doc.Employee.DocumentNumber,
			FirstName:      doc.Employee.Name,
			Position:       doc.Employee.Position,
			ContractType:   doc.Employee.ContractType,
			ContractStart:  optionalDate(doc.Input.ContractStart),
			CostCenter:     doc.Employee.CostCenter,
		},
		Earnings: xmlEarnings{
			BasePay:     amount(r.RegularPay),
			Transport:   amount(r.TransportAllowance),
			Overtime:    amount(r.OvertimePay),
			NightShift:  amount(r.NightShiftSurcharge),
			Holidays:    amount(r.HolidayPay),
			Tips:        amount(r.Tips),
			Commissions: amount(r.Commissions),
			Bonuses:     amount(r.Bonuses),
		},
		Deductions: xmlDeductions{
			Health:      amount(r.HealthDeduction),
			Pension:     amount(r.PensionDeduction),
			Loans:       amount(r.LoanDeductions),
			Withholding: amount(r.WithholdingTax),
		},
		Provisions: xmlProvisions{
			Severance:         amount(r.SeveranceProvision),
			SeveranceInterest: amount(r.SeveranceInterestProvision),
			ServiceBonus:      amount(r.ServiceBonusProvision),
			Vacation:          amount(r.VacationProvision),
		},
		Totals: xmlTotals{
			Earnings:   amount(r.TotalEarnings),
			Deductions: amount(r.TotalDeductions),
			NetPay:     amount(r.NetPay),
		},
	}

	if st := r.Settlement; st != nil {
		root.Settlement = &xmlSettlement{
			EndDate:           xmlText{Value: optionalDate(doc.Input.ContractEnd)},
			DaysToSettle:      xmlText{Value: strconv.Itoa(st.DaysToSettle)},
			Vacation:          amount(st.ProportionalVacation),
			Severance:         amount(st.ProportionalSeverance),
			SeveranceInterest: amount(st.SeveranceInterest),
			ServiceBonus:      amount(st.ProportionalServiceBonus),
			Indemnity:         amount(st.Indemnity),
			Total:             amount(st.Total),
		}
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("encode payroll xml: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// FileName is the download name for a document: nomina_<document number>.xml.
func FileName(doc Document) string {
	return "nomina_" + doc.Employee.DocumentNumber + ".xml"
}

func optionalDate(tp *generic.TimePoint) string {
	if tp == nil {
		return ""
	}
	return tp.String()
}

func amount(m generic.Money) xmlAmount {
	currency := m.Currency
	if currency == "" {
		currency = generic.CurrencyCOP
	}
	return xmlAmount{Value: m.Rounded(), Currency: string(currency)}
}

// =============================================================================
// XML SCHEMA
// =============================================================================

type xmlNomina struct {
	XMLName       xml.Name `xml:"NominaElectronica"`
	XSI           string   `xml:"xmlns:xsi,attr"`
	XMLNS         string   `xml:"xmlns,attr"`
	Version       string   `xml:"version,attr"`
	PeriodStart   string   `xml:"periodoInicio,attr"`
	PeriodEnd     string   `xml:"periodoFin,attr"`
	PayrollNumber string   `xml:"numeroNomina,attr"`

	Employer   xmlEmployer    `xml:"Empleador"`
	Employee   xmlEmployee    `xml:"Empleado"`
	Earnings   xmlEarnings    `xml:"Devengados"`
	Deductions xmlDeductions  `xml:"Deducciones"`
	Provisions xmlProvisions  `xml:"Provisiones"`
	Settlement *xmlSettlement `xml:"LiquidacionContrato,omitempty"`
	Totals     xmlTotals      `xml:"Totales"`
}

type xmlEmployer struct {
	TaxID        string `xml:"nit,attr"`
	LegalName    string `xml:"razonSocial,attr"`
	Address      string `xml:"direccion,attr,omitempty"`
	Municipality string `xml:"municipio,attr,omitempty"`
	PostalCode   string `xml:"codigoPostal,attr,omitempty"`
}

type xmlEmployee struct {
	DocumentType   string `xml:"tipoDocumento,attr"`
	DocumentNumber string `xml:"identificacion,attr"`
	FirstName      string `xml:"primerNombre,attr"`
	Position       string `xml:"cargo,attr"`
	ContractType   string `xml:"tipoContrato,attr"`
	ContractStart  string `xml:"fechaInicioContrato,attr"`
	CostCenter     string `xml:"centroCosto,attr"`
}

type xmlAmount struct {
	Value    int64  `xml:"valor,attr"`
	Currency string `xml:"moneda,attr,omitempty"`
}

type xmlText struct {
	Value string `xml:"valor,attr"`
}

type xmlEarnings struct {
	BasePay     xmlAmount `xml:"Sueldo"`
	Transport   xmlAmount `xml:"AuxilioTransporte"`
	Overtime    xmlAmount `xml:"HorasExtras"`
	NightShift  xmlAmount `xml:"RecargoNocturno"`
	Holidays    xmlAmount `xml:"Festivos"`
	Tips        xmlAmount `xml:"Propinas"`
	Commissions xmlAmount `xml:"Comisiones"`
	Bonuses     xmlAmount `xml:"Bonificaciones"`
}

type xmlDeductions struct {
	Health      xmlAmount `xml:"Salud"`
	Pension     xmlAmount `xml:"Pension"`
	Loans       xmlAmount `xml:"Libranzas"`
	Withholding xmlAmount `xml:"Retenciones"`
}

type xmlProvisions struct {
	Severance         xmlAmount `xml:"Cesantias"`
	SeveranceInterest xmlAmount `xml:"InteresesCesantias"`
	ServiceBonus      xmlAmount `xml:"PrimaServicios"`
	Vacation          xmlAmount `xml:"Vacaciones"`
}

type xmlSettlement struct {
	EndDate           xmlText   `xml:"FechaFin"`
	DaysToSettle      xmlText   `xml:"DiasLiquidar"`
	Vacation          xmlAmount `xml:"VacacionesLiquidadas"`
	Severance         xmlAmount `xml:"CesantiasLiquidadas"`
	SeveranceInterest xmlAmount `xml:"InteresesCesantiasLiquidados"`
	ServiceBonus      xmlAmount `xml:"PrimaLiquidada"`
	Indemnity         xmlAmount `xml:"Indemnizacion"`
	Total             xmlAmount `xml:"Total"`
}

type xmlTotals struct {
	Earnings   xmlAmount `xml:"TotalDevengado"`
	Deductions xmlAmount `xml:"TotalDeducciones"`
	NetPay     xmlAmount `xml:"NetoPagar"`
}
