package nomina

import (
	"strconv"
	"strings"

	"github.com/Hellzyr/Nominer/generic"
)

// =============================================================================
// INPUT BOUNDARY - flat form fields to a typed Document
// =============================================================================

// Fields is a flat mapping of form field ids to raw text values.
type Fields map[string]string

// Form field ids.
const (
	FieldEmployerTaxID  = "nit"
	FieldEmployerName   = "razonSocial"
	FieldEmployerAddr   = "direccion"
	FieldMunicipality   = "municipio"
	FieldPostalCode     = "codigoPostal"
	FieldEmployeeName   = "nombreEmpleado"
	FieldDocumentType   = "tipoDocumento"
	FieldDocumentNumber = "identificacion"
	FieldPosition       = "cargo"
	FieldContractType   = "tipoContrato"
	FieldContractStart  = "fechaInicioContrato"
	FieldCostCenter     = "centroCosto"

	FieldBaseSalary  = "salarioBase"
	FieldDaysWorked  = "diasTrabajados"
	FieldOvertime    = "horasExtras"
	FieldNightShift  = "recargoNocturno"
	FieldHolidayPay  = "festivos"
	FieldTips        = "propinas"
	FieldCommissions = "comisiones"
	FieldBonuses     = "bonificaciones"
	FieldLoans       = "libranzas"
	FieldWithholding = "retenciones"

	FieldContractEnd      = "fechaFinContrato"
	FieldTerminationCause = "causaTerminacion"
)

// Employer identifies the company issuing the payroll.
type Employer struct {
	TaxID        string
	LegalName    string
	Address      string
	Municipality string
	PostalCode   string
}

// Employee identifies the worker the payroll is for.
type Employee struct {
	DocumentType   string
	DocumentNumber string
	Name           string
	Position       string
	ContractType   string
	CostCenter     string
}

// Document is everything the serializer needs besides the computed Result.
type Document struct {
	Employer Employer
	Employee Employee
	Input    Input
}

// ParseFields extracts a Document from raw form fields. It never fails:
// blank or unparsable amounts become 0, unparsable dates count as absent.
func ParseFields(f Fields) Document {
	return Document{
		Employer: Employer{
			TaxID:        f.text(FieldEmployerTaxID),
			LegalName:    f.text(FieldEmployerName),
			Address:      f.text(FieldEmployerAddr),
			Municipality: f.text(FieldMunicipality),
			PostalCode:   f.text(FieldPostalCode),
		},
		Employee: Employee{
			DocumentType:   f.text(FieldDocumentType),
			DocumentNumber: f.text(FieldDocumentNumber),
			Name:           f.text(FieldEmployeeName),
			Position:       f.text(FieldPosition),
			ContractType:   f.text(FieldContractType),
			CostCenter:     f.text(FieldCostCenter),
		},
		Input: Input{
			BaseSalary:          f.money(FieldBaseSalary),
			DaysWorked:          f.integer(FieldDaysWorked),
			OvertimePay:         f.money(FieldOvertime),
			NightShiftSurcharge: f.money(FieldNightShift),
			HolidayPay:          f.money(FieldHolidayPay),
			Tips:                f.money(FieldTips),
			Commissions:         f.money(FieldCommissions),
			Bonuses:             f.money(FieldBonuses),
			LoanDeductions:      f.money(FieldLoans),
			WithholdingTax:      f.money(FieldWithholding),
			ContractStart:       generic.ParseOptionalDate(f[FieldContractStart]),
			ContractEnd:         generic.ParseOptionalDate(f[FieldContractEnd]),
			TerminationCause:    ParseTerminationCause(f.text(FieldTerminationCause)),
		},
	}
}

func (f Fields) text(key string) string {
	return strings.TrimSpace(f[key])
}

func (f Fields) money(key string) generic.Money {
	return generic.ParseMoney(f.text(key))
}

// integer reads the leading integer part, so "30.5" reads as 30.
func (f Fields) integer(key string) int {
	s := f.text(key)
	if i := strings.IndexAny(s, ".,"); i >= 0 {
		s = s[:i]
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
