package recommend

import "github.com/jonathan/cv-analyzer/internal/types"

// Rule fires when the named category's percentage sits below Threshold.
type Rule struct {
	Category  string
	Threshold float64
	Message   string
}

// roleRules are the fixed per-role advice triples. Only the rules of the
// selected role are evaluated, in declaration order.
var roleRules = map[types.Role][]Rule{
	types.RoleManualTester: {
		{
			Category:  "Testing Fundamentals",
			Threshold: 60,
			Message:   "Detail your test design work: the test cases, scenarios, and plans you authored and executed.",
		},
		{
			Category:  "Defect Management",
			Threshold: 40,
			Message:   "Show your defect lifecycle experience, including how you logged and tracked bugs in Jira.",
		},
	},
	types.RoleTestAutomation: {
		{
			Category:  "Automation Frameworks",
			Threshold: 60,
			Message:   "Name the automation frameworks you have built with, such as Selenium, Cypress, or Robot Framework.",
		},
		{
			Category:  "CI/CD & Build Tools",
			Threshold: 50,
			Message:   "Describe your pipeline work: Jenkins jobs, Git workflows, and Docker-based test environments.",
		},
	},
	types.RoleFullStackAutomation: {
		{
			Category:  "Cloud & Infrastructure",
			Threshold: 50,
			Message:   "Call out hands-on cloud and container experience across AWS, Azure, Docker, or Kubernetes.",
		},
		{
			Category:  "Performance & Data",
			Threshold: 40,
			Message:   "Mention performance or load testing work with tools like JMeter or Gatling.",
		},
	},
}

// RulesFor returns the advice rules for a role.
func RulesFor(role types.Role) []Rule {
	return roleRules[role]
}
