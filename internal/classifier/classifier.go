// Package classifier assigns payment types to labor-distribution rows based
// on their general-ledger account codes.
package classifier

import (
	"fmt"
	"strings"

	"fjacquet/labordist-csv/internal/logging"
	"fjacquet/labordist-csv/internal/models"
)

// Classifier resolves general-ledger account codes to payment types using an
// ordered rule list. Rules loaded from configuration are consulted before the
// built-in mapping, so a deployment can extend or override it; the first
// matching prefix wins.
type Classifier struct {
	rules  []models.PrefixRule
	logger logging.Logger
}

// DefaultRules returns the built-in prefix mapping: 51-prefixed accounts are
// salary postings, 52-prefixed accounts are benefit postings.
func DefaultRules() []models.PrefixRule {
	return []models.PrefixRule{
		{Prefix: "51", Type: models.PaymentTypeSalary},
		{Prefix: "52", Type: models.PaymentTypeBenefit},
	}
}

// New creates a Classifier with the built-in rules only.
func New(logger logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Classifier{
		rules:  DefaultRules(),
		logger: logger,
	}
}

// NewWithRules creates a Classifier whose extra rules are consulted ahead of
// the built-in mapping. Every rule must carry a non-empty prefix and one of
// the known payment types; an empty prefix would shadow the whole mapping.
func NewWithRules(rules []models.PrefixRule, logger logging.Logger) (*Classifier, error) {
	for _, r := range rules {
		if r.Prefix == "" {
			return nil, fmt.Errorf("classification rule with empty prefix")
		}
		switch r.Type {
		case models.PaymentTypeSalary, models.PaymentTypeBenefit, models.PaymentTypeOther:
		default:
			return nil, fmt.Errorf("classification rule for prefix %q has unknown type %q", r.Prefix, r.Type)
		}
	}

	all := make([]models.PrefixRule, 0, len(rules)+2)
	all = append(all, rules...)
	all = append(all, DefaultRules()...)

	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Classifier{
		rules:  all,
		logger: logger,
	}, nil
}

// Classify maps one general-ledger account code to a payment type. Leading
// zeros are stripped before the prefix comparison; no other normalization
// happens, so surrounding whitespace or an embedded zero run makes a code
// fall through to Other. Empty codes are Other.
func (c *Classifier) Classify(code string) string {
	stripped := strings.TrimLeft(code, "0")
	for _, rule := range c.rules {
		if strings.HasPrefix(stripped, rule.Prefix) {
			return rule.Type
		}
	}
	return models.PaymentTypeOther
}

// ClassifyTable stamps every row's payment type from its account code cell.
// When the export carries no account column at all, every row is classified
// as Other without consulting the rules.
func (c *Classifier) ClassifyTable(t *models.Table) {
	t.AddColumn(models.ColumnPaymentType)

	if !t.HasColumn(models.ColumnGLAccount) {
		c.logger.Warn("Export has no account column, classifying every row as Other",
			logging.Field{Key: logging.FieldColumn, Value: models.ColumnGLAccount})
		for _, row := range t.Rows {
			row[models.ColumnPaymentType] = models.PaymentTypeOther
		}
		return
	}

	counts := make(map[string]int, 3)
	for _, row := range t.Rows {
		paymentType := c.Classify(row.Get(models.ColumnGLAccount))
		row[models.ColumnPaymentType] = paymentType
		counts[paymentType]++
	}

	c.logger.Debug("Classified rows by account prefix",
		logging.Field{Key: "salary", Value: counts[models.PaymentTypeSalary]},
		logging.Field{Key: "benefit", Value: counts[models.PaymentTypeBenefit]},
		logging.Field{Key: "other", Value: counts[models.PaymentTypeOther]})
}
