package config

// FormatRuleID renders a rule identifier for output. Rules without a name
// are always shown by ID; unknown formats fall back to the name.
func FormatRuleID(format RuleFormat, ruleID, ruleName string) string {
	switch {
	case ruleName == "", format == RuleFormatID:
		return ruleID
	case format == RuleFormatCombined:
		return ruleID + "/" + ruleName
	default:
		return ruleName
	}
}
