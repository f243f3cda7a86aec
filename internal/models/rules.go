package models

// PrefixRule maps a general-ledger account prefix to a payment type.
// Prefixes are matched against the account code after leading zeros are
// stripped; the first matching rule wins.
type PrefixRule struct {
	Prefix string `yaml:"prefix"`
	Type   string `yaml:"type"`
}

// RulesConfig is the top-level structure of a classification rules file.
type RulesConfig struct {
	Rules []PrefixRule `yaml:"rules"`
}
