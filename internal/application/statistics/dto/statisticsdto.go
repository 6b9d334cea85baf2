// Package dto holds the statistics read models returned to the API
// layer. All rates are percentages in the 0..100 range and zero when
// the denominator is zero.
package dto

import "time"

// TrendPoint is one UTC calendar day of submission activity.
type TrendPoint struct {
	Date                string `json:"date"`
	TotalChecklists     int64  `json:"total_checklists"`
	CompletedChecklists int64  `json:"completed_checklists"`
	NokAnswers          int64  `json:"nok_answers"`
}

// TemplateUsage is how often one template was used and how it scored.
type TemplateUsage struct {
	TemplateName   string  `json:"template_name"`
	UsageCount     int64   `json:"usage_count"`
	AverageNokRate float64 `json:"average_nok_rate"`
}

// LinePerformance is one production line's failure picture.
type LinePerformance struct {
	LineName        string  `json:"line_name"`
	TotalChecklists int64   `json:"total_checklists"`
	NokAnswers      int64   `json:"nok_answers"`
	NokRate         float64 `json:"nok_rate"`
}

// UserProductivity is one inspector's output within the window.
type UserProductivity struct {
	UserName            string `json:"user_name"`
	CompletedChecklists int64  `json:"completed_checklists"`
	ActionPlansCreated  int64  `json:"action_plans_created"`
}

// ShiftDistribution is checklist activity under one shift label.
type ShiftDistribution struct {
	Shift           string  `json:"shift"`
	TotalChecklists int64   `json:"total_checklists"`
	NokRate         float64 `json:"nok_rate"`
}

// ProjectStatistics is the full quality picture for one project over an
// optional date window.
type ProjectStatistics struct {
	ProjectID             uint                `json:"project_id"`
	ProjectName           string              `json:"project_name"`
	TotalChecklists       int64               `json:"total_checklists"`
	CompletedChecklists   int64               `json:"completed_checklists"`
	PendingChecklists     int64               `json:"pending_checklists"`
	CompletionRate        float64             `json:"completion_rate"`
	TotalAnswers          int64               `json:"total_answers"`
	OKAnswers             int64               `json:"ok_answers"`
	NokAnswers            int64               `json:"nok_answers"`
	OKRate                float64             `json:"ok_rate"`
	NokRate               float64             `json:"nok_rate"`
	TotalActionPlans      int64               `json:"total_action_plans"`
	OpenActionPlans       int64               `json:"open_action_plans"`
	ClosedActionPlans     int64               `json:"closed_action_plans"`
	ActionPlanClosureRate float64             `json:"action_plan_closure_rate"`
	Trend                 []TrendPoint        `json:"trend"`
	TemplateUsage         []TemplateUsage     `json:"template_usage"`
	LinePerformance       []LinePerformance   `json:"line_performance"`
	UserProductivity      []UserProductivity  `json:"user_productivity"`
	ShiftDistribution     []ShiftDistribution `json:"shift_distribution"`
}

// ProjectHighlight is one of the busiest projects on the dashboard.
type ProjectHighlight struct {
	ProjectID      uint    `json:"project_id"`
	ProjectName    string  `json:"project_name"`
	ChecklistCount int64   `json:"checklist_count"`
	QualityRate    float64 `json:"quality_rate"`
}

// RecentChecklist is a recently completed checklist on the dashboard.
type RecentChecklist struct {
	ChecklistID  uint       `json:"checklist_id"`
	TemplateName string     `json:"template_name"`
	ProjectName  string     `json:"project_name"`
	UserName     string     `json:"user_name"`
	Date         *time.Time `json:"date"`
	NokAnswers   int        `json:"nok_answers"`
}

// DashboardOverview is the landing page snapshot.
type DashboardOverview struct {
	TotalChecklists    int64              `json:"total_checklists"`
	ChecklistsToday    int64              `json:"checklists_today"`
	TotalProjects      int64              `json:"total_projects"`
	TotalUsers         int64              `json:"total_users"`
	TotalTemplates     int64              `json:"total_templates"`
	OpenActionPlans    int64              `json:"open_action_plans"`
	OverallQualityRate float64            `json:"overall_quality_rate"`
	TopProjects        []ProjectHighlight `json:"top_projects"`
	RecentChecklists   []RecentChecklist  `json:"recent_checklists"`
}

// ProjectComparisonEntry is one project's share of a side-by-side
// comparison over a date window.
type ProjectComparisonEntry struct {
	ProjectID           uint    `json:"project_id"`
	ProjectName         string  `json:"project_name"`
	TotalChecklists     int64   `json:"total_checklists"`
	CompletedChecklists int64   `json:"completed_checklists"`
	QualityRate         float64 `json:"quality_rate"`
	OpenActionPlans     int64   `json:"open_action_plans"`
	AvgChecklistsPerDay float64 `json:"avg_checklists_per_day"`
}

// ProjectComparison holds the compared projects in request order.
type ProjectComparison struct {
	Projects []ProjectComparisonEntry `json:"projects"`
}
