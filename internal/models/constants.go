package models

// Payment types assigned during classification
const (
	PaymentTypeSalary  = "Salary"
	PaymentTypeBenefit = "Benefit"
	PaymentTypeOther   = "Other"
)

// Column names of the labor-distribution export vocabulary
const (
	ColumnFundsCenter      = "Funds Center"
	ColumnFundsCenterName  = "Funds Center Name"
	ColumnGrantNumber      = "Grant_Number"
	ColumnFund             = "Fund"
	ColumnPersonID         = "Person Id"
	ColumnPernr            = "Pernr"
	ColumnFirstName        = "First Name"
	ColumnLastName         = "Last Name"
	ColumnFullName         = "Full Name"
	ColumnEmploymentStatus = "Employment Status & Description (Combined)"
	ColumnPositionID       = "Position Id"
	ColumnWageType         = "Wage Type"
	ColumnSymbolicAccount  = "Symbolic Account"
	ColumnGLAccount        = "Gl Account"
	ColumnOrgUnit          = "Org Unit Department"
	ColumnFiscalPeriod     = "Fiscal Year & Fiscal Period (Combined)"
	ColumnInPeriodDate     = "In Period Date"
	ColumnForPeriodDate    = "For Period Date"
	ColumnHours            = "Hours"
	ColumnPaymentType      = "Payment Type"
	ColumnAmount           = "Amount"
)

// TotalIndicatorColumns are the columns whose cells mark subtotal and grand
// total rows in the raw export. Columns absent from an export are skipped.
var TotalIndicatorColumns = []string{
	ColumnFiscalPeriod,
	ColumnFundsCenterName,
	ColumnFundsCenter,
	ColumnEmploymentStatus,
}

// PreferredColumnOrder is the column layout of the cleaned output. Columns
// the export does not carry are skipped; columns outside this list follow
// in their original relative order.
var PreferredColumnOrder = []string{
	ColumnFundsCenter,
	ColumnFundsCenterName,
	ColumnGrantNumber,
	ColumnFund,
	ColumnPersonID,
	ColumnPernr,
	ColumnFullName,
	ColumnEmploymentStatus,
	ColumnPositionID,
	ColumnWageType,
	ColumnSymbolicAccount,
	ColumnGLAccount,
	ColumnOrgUnit,
	ColumnFiscalPeriod,
	ColumnInPeriodDate,
	ColumnForPeriodDate,
	ColumnHours,
	ColumnPaymentType,
	ColumnAmount,
}

// File permissions
const (
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
