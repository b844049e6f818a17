package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/windoze95/recipefinder-api/internal/logger"
	"github.com/windoze95/recipefinder-api/internal/models"
	"github.com/windoze95/recipefinder-api/internal/normalize"
	"github.com/windoze95/recipefinder-api/internal/providers"
	"github.com/windoze95/recipefinder-api/internal/ranking"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MaxDetailLookups caps the lookup.php requests issued per search.
const MaxDetailLookups = 10

type mealsCall = func(ctx context.Context) providers.Result[[]providers.Meal]

// searchFallback runs the TheMealDB multi-query protocol: fan out the name,
// first-letter, ingredient, category, and area queries, merge by meal id,
// fill in missing details, then score, sort, and cap.
func (s *SearchService) searchFallback(ctx context.Context, query string, to int) (results []models.Recipe) {
	log := logger.FromContext(ctx).With(zap.String("query", query), zap.String("provider", "themealdb"))

	defer func() {
		if r := recover(); r != nil {
			log.Error("themealdb search failed", zap.Any("panic", r))
			results = []models.Recipe{}
		}
	}()

	lowered := strings.ToLower(query)

	categories := s.MealDB.Categories(ctx)
	if categories.Failed() {
		log.Warn("themealdb search aborted, categories unavailable", zap.Error(categories.Err()))
		return []models.Recipe{}
	}

	log.Debug("starting themealdb search")

	calls := []mealsCall{
		func(ctx context.Context) providers.Result[[]providers.Meal] { return s.MealDB.SearchByName(ctx, query) },
		func(ctx context.Context) providers.Result[[]providers.Meal] {
			return s.MealDB.SearchByFirstLetter(ctx, firstLetter(query))
		},
		func(ctx context.Context) providers.Result[[]providers.Meal] {
			return s.MealDB.FilterByIngredient(ctx, query)
		},
	}
	for _, c := range categories.Value() {
		if !strings.Contains(strings.ToLower(c.Name), lowered) {
			continue
		}
		category := c.Name
		calls = append(calls, func(ctx context.Context) providers.Result[[]providers.Meal] {
			return s.MealDB.FilterByCategory(ctx, category)
		})
	}
	calls = append(calls, func(ctx context.Context) providers.Result[[]providers.Meal] {
		return s.MealDB.FilterByArea(ctx, query)
	})

	merged := newMergeMap()
	for _, res := range settleAll(ctx, calls) {
		if res.OK() {
			merged.add(res.Value()...)
		}
	}

	s.fillDetails(ctx, merged, min(to, MaxDetailLookups))

	if merged.len() == 0 {
		s.searchMatchingAreas(ctx, log, merged, lowered)
	}

	results = rank(merged.list(), query, to)

	log.Info("search complete",
		zap.Int("count", len(results)),
		zap.Strings("matches", models.Labels(results)),
	)
	return results
}

// fillDetails replaces up to limit filter-only records with their full
// lookup.php record.
func (s *SearchService) fillDetails(ctx context.Context, merged *mergeMap, limit int) {
	var ids []string
	for _, meal := range merged.list() {
		if len(ids) == limit {
			break
		}
		if !meal.HasDetails() {
			ids = append(ids, meal.ID)
		}
	}
	if len(ids) == 0 {
		return
	}

	lookups := make([]func(ctx context.Context) providers.Result[providers.Meal], len(ids))
	for i, id := range ids {
		id := id
		lookups[i] = func(ctx context.Context) providers.Result[providers.Meal] {
			return s.MealDB.LookupByID(ctx, id)
		}
	}

	for _, res := range settleAll(ctx, lookups) {
		if res.OK() {
			merged.add(res.Value())
		}
	}
}

// searchMatchingAreas is the second pass for queries that matched nothing:
// any area whose name contains the query is filtered on.
func (s *SearchService) searchMatchingAreas(ctx context.Context, log *zap.Logger, merged *mergeMap, lowered string) {
	areas := s.MealDB.ListByType(ctx, providers.ListArea)
	if areas.Failed() {
		log.Warn("themealdb area list unavailable", zap.Error(areas.Err()))
		return
	}

	var calls []mealsCall
	for _, a := range areas.Value() {
		area := a.Name()
		if !strings.Contains(strings.ToLower(area), lowered) {
			continue
		}
		calls = append(calls, func(ctx context.Context) providers.Result[[]providers.Meal] {
			return s.MealDB.FilterByArea(ctx, area)
		})
	}
	if len(calls) == 0 {
		return
	}

	for _, res := range settleAll(ctx, calls) {
		if res.OK() {
			merged.add(res.Value()...)
		}
	}
}

type scoredMeal struct {
	meal  providers.Meal
	score int
}

// rank drops unmatched meals, orders the rest by score (ties keep merge
// order), and normalizes the first to.
func rank(meals []providers.Meal, query string, to int) []models.Recipe {
	scored := make([]scoredMeal, 0, len(meals))
	for _, meal := range meals {
		if score := ranking.Score(meal, query); score > 0 {
			scored = append(scored, scoredMeal{meal: meal, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if len(scored) > to {
		scored = scored[:to]
	}

	recipes := make([]models.Recipe, len(scored))
	for i, sm := range scored {
		recipes[i] = normalize.ScoredMeal(sm.meal, sm.score)
	}
	return recipes
}

// settleAll runs every call concurrently and waits for all of them. A call
// that panics settles as a failed Empty; no call cancels another.
func settleAll[T any](ctx context.Context, calls []func(ctx context.Context) providers.Result[T]) []providers.Result[T] {
	results := make([]providers.Result[T], len(calls))
	var g errgroup.Group
	for i, call := range calls {
		i, call := i, call
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					results[i] = providers.Empty[T](fmt.Errorf("request panicked: %v", r))
				}
			}()
			results[i] = call(ctx)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// mergeMap deduplicates meals by id. Re-adding an id replaces the record but
// keeps its original position.
type mergeMap struct {
	order []string
	meals map[string]providers.Meal
}

func newMergeMap() *mergeMap {
	return &mergeMap{meals: make(map[string]providers.Meal)}
}

func (m *mergeMap) add(meals ...providers.Meal) {
	for _, meal := range meals {
		if meal.ID == "" {
			continue
		}
		if _, seen := m.meals[meal.ID]; !seen {
			m.order = append(m.order, meal.ID)
		}
		m.meals[meal.ID] = meal
	}
}

func (m *mergeMap) len() int {
	return len(m.order)
}

func (m *mergeMap) list() []providers.Meal {
	out := make([]providers.Meal, len(m.order))
	for i, id := range m.order {
		out[i] = m.meals[id]
	}
	return out
}

func firstLetter(query string) string {
	r, size := utf8.DecodeRuneInString(query)
	if r == utf8.RuneError && size <= 1 {
		return ""
	}
	return string(r)
}
