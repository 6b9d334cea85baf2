package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"qcheck/internal/domain/checklist"
	vo "qcheck/internal/domain/checklist/valueobjects"
	"qcheck/internal/infrastructure/persistence/mappers"
	"qcheck/internal/infrastructure/persistence/models"
	"qcheck/internal/shared/biztime"
	db "qcheck/internal/shared/db"
	"qcheck/internal/shared/query"
)

type ChecklistRepository struct {
	db     *gorm.DB
	mapper mappers.ChecklistMapper
}

func NewChecklistRepository(db *gorm.DB) *ChecklistRepository {
	return &ChecklistRepository{
		db:     db,
		mapper: mappers.NewChecklistMapper(),
	}
}

func (r *ChecklistRepository) Save(ctx context.Context, c *checklist.Checklist) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save checklist: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *ChecklistRepository) Update(ctx context.Context, c *checklist.Checklist) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ChecklistModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update checklist: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *ChecklistRepository) FindByID(ctx context.Context, id uint) (*checklist.Checklist, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	return r.findOne(ctx, tx, id)
}

// FindByIDForUpdate takes a SELECT FOR UPDATE row lock so that the
// load-check-mutate sequence of a submission serializes against
// concurrent submitters. Must run inside a transaction.
func (r *ChecklistRepository) FindByIDForUpdate(ctx context.Context, id uint) (*checklist.Checklist, error) {
	tx := db.GetTxFromContext(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"})
	return r.findOne(ctx, tx, id)
}

func (r *ChecklistRepository) findOne(ctx context.Context, tx *gorm.DB, id uint) (*checklist.Checklist, error) {
	var model models.ChecklistModel

	if err := tx.
		First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("checklist not found")
		}
		return nil, fmt.Errorf("failed to find checklist: %w", err)
	}

	c, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, err
	}

	if err := r.loadDetails(ctx, []*checklist.Checklist{c}); err != nil {
		return nil, err
	}

	return c, nil
}

func (r *ChecklistRepository) ListByUser(ctx context.Context, userID uint, page query.PageFilter) ([]*checklist.Checklist, error) {
	var modelList []models.ChecklistModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list checklists: %w", err)
	}

	return r.toDomainList(ctx, modelList)
}

func (r *ChecklistRepository) SaveAnswers(ctx context.Context, answers []*checklist.Answer) error {
	if len(answers) == 0 {
		return nil
	}

	modelList := make([]*models.AnswerModel, 0, len(answers))
	for _, a := range answers {
		modelList = append(modelList, r.mapper.AnswerToModel(a))
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(&modelList).Error; err != nil {
		return fmt.Errorf("failed to save answers: %w", err)
	}

	for i, a := range answers {
		if err := a.SetID(modelList[i].ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *ChecklistRepository) SaveActionPlans(ctx context.Context, plans []*checklist.ActionPlan) error {
	if len(plans) == 0 {
		return nil
	}

	modelList := make([]*models.ActionPlanModel, 0, len(plans))
	for _, p := range plans {
		modelList = append(modelList, r.mapper.ActionPlanToModel(p))
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(&modelList).Error; err != nil {
		return fmt.Errorf("failed to save action plans: %w", err)
	}

	for i, p := range plans {
		if err := p.SetID(modelList[i].ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *ChecklistRepository) FindActionPlanByID(ctx context.Context, id uint) (*checklist.ActionPlan, error) {
	var model models.ActionPlanModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("action plan not found")
		}
		return nil, fmt.Errorf("failed to find action plan: %w", err)
	}

	return r.mapper.ActionPlanToDomain(&model)
}

func (r *ChecklistRepository) UpdateActionPlan(ctx context.Context, plan *checklist.ActionPlan) error {
	model := r.mapper.ActionPlanToModel(plan)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ActionPlanModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update action plan: %w", result.Error)
	}

	return nil
}

// toDomainList converts models and batch-loads answers and plans for all of them.
func (r *ChecklistRepository) toDomainList(ctx context.Context, modelList []models.ChecklistModel) ([]*checklist.Checklist, error) {
	result := make([]*checklist.Checklist, 0, len(modelList))
	for i := range modelList {
		c, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}

	if err := r.loadDetails(ctx, result); err != nil {
		return nil, err
	}

	return result, nil
}

// loadDetails attaches answers and action plans to the given checklists
// using two queries total.
func (r *ChecklistRepository) loadDetails(ctx context.Context, list []*checklist.Checklist) error {
	if len(list) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(list))
	byID := make(map[uint]*checklist.Checklist, len(list))
	for _, c := range list {
		ids = append(ids, c.ID())
		byID[c.ID()] = c
	}

	tx := db.GetTxFromContext(ctx, r.db)

	var answerModels []models.AnswerModel
	if err := tx.
		Where("checklist_id IN ?", ids).
		Order("id ASC").
		Find(&answerModels).Error; err != nil {
		return fmt.Errorf("failed to load answers: %w", err)
	}

	answersByChecklist := make(map[uint][]*checklist.Answer)
	for i := range answerModels {
		a, err := r.mapper.AnswerToDomain(&answerModels[i])
		if err != nil {
			return err
		}
		answersByChecklist[a.ChecklistID()] = append(answersByChecklist[a.ChecklistID()], a)
	}

	var planModels []models.ActionPlanModel
	if err := tx.
		Where("checklist_id IN ?", ids).
		Order("id ASC").
		Find(&planModels).Error; err != nil {
		return fmt.Errorf("failed to load action plans: %w", err)
	}

	plansByChecklist := make(map[uint][]*checklist.ActionPlan)
	for i := range planModels {
		p, err := r.mapper.ActionPlanToDomain(&planModels[i])
		if err != nil {
			return err
		}
		plansByChecklist[p.ChecklistID()] = append(plansByChecklist[p.ChecklistID()], p)
	}

	for _, c := range list {
		c.AttachAnswers(answersByChecklist[c.ID()])
		c.AttachActionPlans(plansByChecklist[c.ID()])
	}

	return nil
}

// --- statistics reads ---

func (r *ChecklistRepository) ListWithDetails(ctx context.Context, filter checklist.QueryFilter) ([]*checklist.Checklist, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.ChecklistModel{})

	if filter.ProjectID != nil {
		tx = tx.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.StartDate != nil {
		tx = tx.Where("date >= ?", filter.StartDate.UnixMilli())
	}
	if filter.EndDate != nil {
		tx = tx.Where("date <= ?", filter.EndDate.UnixMilli())
	}

	var modelList []models.ChecklistModel
	if err := tx.Order("date ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list checklists: %w", err)
	}

	return r.toDomainList(ctx, modelList)
}

func (r *ChecklistRepository) CountChecklists(ctx context.Context) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.ChecklistModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count checklists: %w", err)
	}
	return count, nil
}

func (r *ChecklistRepository) CountChecklistsOnDay(ctx context.Context, day time.Time) (int64, error) {
	start := biztime.StartOfDayUTC(day).UnixMilli()
	end := biztime.EndOfDayUTC(day).UnixMilli()

	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.ChecklistModel{}).
		Where("date >= ? AND date <= ?", start, end).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count checklists for day: %w", err)
	}
	return count, nil
}

func (r *ChecklistRepository) CountOpenActionPlans(ctx context.Context) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.ActionPlanModel{}).
		Where("status <> ?", vo.PlanStatusClosed.String()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count open action plans: %w", err)
	}
	return count, nil
}

func (r *ChecklistRepository) TallyAnswers(ctx context.Context) (checklist.AnswerTally, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var tally checklist.AnswerTally
	err := tx.
		Model(&models.AnswerModel{}).
		Select("COUNT(*) AS total, SUM(CASE WHEN UPPER(value) = 'OK' THEN 1 ELSE 0 END) AS ok").
		Scan(&tally).Error
	if err != nil {
		return checklist.AnswerTally{}, fmt.Errorf("failed to tally answers: %w", err)
	}
	return tally, nil
}

func (r *ChecklistRepository) TallyAnswersByProject(ctx context.Context, projectID uint) (checklist.AnswerTally, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var tally checklist.AnswerTally
	err := tx.
		Model(&models.AnswerModel{}).
		Joins("JOIN checklists ON checklists.id = answers.checklist_id").
		Where("checklists.project_id = ?", projectID).
		Select("COUNT(*) AS total, SUM(CASE WHEN UPPER(answers.value) = 'OK' THEN 1 ELSE 0 END) AS ok").
		Scan(&tally).Error
	if err != nil {
		return checklist.AnswerTally{}, fmt.Errorf("failed to tally answers for project: %w", err)
	}
	return tally, nil
}

func (r *ChecklistRepository) TopProjectsByChecklistCount(ctx context.Context, limit int) ([]checklist.ProjectChecklistCount, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	// Ranks every project, so quiet ones with zero checklists can still
	// fill out the list.
	var rows []checklist.ProjectChecklistCount
	err := tx.
		Model(&models.ProjectModel{}).
		Select("projects.id AS project_id, COUNT(checklists.id) AS checklist_count").
		Joins("LEFT JOIN checklists ON checklists.project_id = projects.id").
		Group("projects.id").
		Order("checklist_count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank projects: %w", err)
	}
	return rows, nil
}

func (r *ChecklistRepository) RecentCompleted(ctx context.Context, limit int) ([]*checklist.Checklist, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.ChecklistModel
	if err := tx.
		Where("status = ?", vo.StatusCompleted.String()).
		Order("date DESC").
		Limit(limit).
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to load recent checklists: %w", err)
	}

	return r.toDomainList(ctx, modelList)
}
