package mealplan

import (
	"context"
	"time"

	"cooktok/domain"
	"cooktok/entities"
	"cooktok/pkg/watch"
)

const dateLayout = "2006-01-02"

type (
	// MealPlanService exposes fire-and-forget mutations and pull-based
	// live queries over the meal planner. The weekly grouping the planner
	// screen renders is computed here, one pass over the week's rows.
	MealPlanService interface {
		InsertMealPlan(ctx context.Context, mealPlan entities.MealPlan) (uint, error)
		UpdateMealPlan(ctx context.Context, mealPlan entities.MealPlan) error
		DeleteMealPlan(ctx context.Context, mealPlan entities.MealPlan) error
		MealPlansForDate(ctx context.Context, date string, userID uint) ([]entities.MealPlan, error)
		AllMealPlans(ctx context.Context, userID uint) ([]entities.MealPlan, error)
		WeekPlan(ctx context.Context, userID uint, anchor string) (domain.WeekPlanResponse, error)
		Watch() *watch.Subscription
	}

	mealPlanService struct {
		mealPlanRepository MealPlanRepository
		notifier           watch.Notifier
	}
)

func NewMealPlanService(mealPlanRepository MealPlanRepository, notifier watch.Notifier) MealPlanService {
	return &mealPlanService{mealPlanRepository: mealPlanRepository, notifier: notifier}
}

func (s *mealPlanService) InsertMealPlan(ctx context.Context, mealPlan entities.MealPlan) (uint, error) {
	if _, err := time.Parse(dateLayout, mealPlan.Date); err != nil {
		return 0, domain.ErrInvalidDate
	}
	return s.mealPlanRepository.InsertMealPlan(ctx, &mealPlan)
}

func (s *mealPlanService) UpdateMealPlan(ctx context.Context, mealPlan entities.MealPlan) error {
	if _, err := time.Parse(dateLayout, mealPlan.Date); err != nil {
		return domain.ErrInvalidDate
	}
	return s.mealPlanRepository.UpdateMealPlan(ctx, &mealPlan)
}

func (s *mealPlanService) DeleteMealPlan(ctx context.Context, mealPlan entities.MealPlan) error {
	return s.mealPlanRepository.DeleteMealPlan(ctx, &mealPlan)
}

func (s *mealPlanService) MealPlansForDate(ctx context.Context, date string, userID uint) ([]entities.MealPlan, error) {
	return s.mealPlanRepository.GetMealPlansForDate(ctx, date, userID)
}

func (s *mealPlanService) AllMealPlans(ctx context.Context, userID uint) ([]entities.MealPlan, error) {
	return s.mealPlanRepository.GetAllMealPlans(ctx, userID)
}

// WeekPlan returns the Monday-anchored week containing anchor, each day's
// rows grouped by meal type. An empty anchor means the current week.
// Every day carries all four slots; a slot without an assignment is an
// empty list, and a slot with stacked rows lists them all.
func (s *mealPlanService) WeekPlan(ctx context.Context, userID uint, anchor string) (domain.WeekPlanResponse, error) {
	day := time.Now()
	if anchor != "" {
		var err error
		day, err = time.Parse(dateLayout, anchor)
		if err != nil {
			return domain.WeekPlanResponse{}, domain.ErrInvalidDate
		}
	}

	offset := (int(day.Weekday()) + 6) % 7 // days since Monday
	monday := day.AddDate(0, 0, -offset)

	res := domain.WeekPlanResponse{Days: make([]domain.WeekDayPlan, 0, 7)}
	for i := 0; i < 7; i++ {
		date := monday.AddDate(0, 0, i).Format(dateLayout)

		rows, err := s.mealPlanRepository.GetMealPlansForDate(ctx, date, userID)
		if err != nil {
			return domain.WeekPlanResponse{}, err
		}

		slots := make(map[string][]domain.MealPlanResponse, len(domain.MealTypes))
		for _, mealType := range domain.MealTypes {
			slots[mealType] = []domain.MealPlanResponse{}
		}
		for _, row := range rows {
			slots[row.MealType] = append(slots[row.MealType], domain.MealPlanResponse{
				ID:       row.ID,
				UserID:   row.UserID,
				Date:     row.Date,
				MealType: row.MealType,
				RecipeID: row.RecipeID,
			})
		}
		res.Days = append(res.Days, domain.WeekDayPlan{Date: date, Slots: slots})
	}
	return res, nil
}

func (s *mealPlanService) Watch() *watch.Subscription {
	return s.notifier.Subscribe(table)
}
