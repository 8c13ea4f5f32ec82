package pairing

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"pairing-generator/internal/infrastructure/config"
	"pairing-generator/internal/pkg/common"

	"github.com/stretchr/testify/require"
)

// scriptedGenerator returns a canned response or error per model and
// records the order models were tried in.
type scriptedGenerator struct {
	mu        sync.Mutex
	responses map[string]string
	errors    map[string]error
	calls     []string
	prompts   []string
}

func (g *scriptedGenerator) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	g.mu.Lock()
	g.calls = append(g.calls, model)
	g.prompts = append(g.prompts, prompt)
	g.mu.Unlock()

	if err, ok := g.errors[model]; ok {
		return "", err
	}
	if resp, ok := g.responses[model]; ok {
		return resp, nil
	}
	return "", errors.New("no script for model " + model)
}

func (g *scriptedGenerator) modelsTried() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.calls...)
}

// recordingStore is a map-backed Store counting writes.
type recordingStore struct {
	mu   sync.Mutex
	data map[string][]common.Recommendation
	sets int
}

func newRecordingStore() *recordingStore {
	return &recordingStore{data: make(map[string][]common.Recommendation)}
}

func (s *recordingStore) Get(ctx context.Context, key string) ([]common.Recommendation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, ok := s.data[key]
	return items, ok
}

func (s *recordingStore) Set(ctx context.Context, key string, items []common.Recommendation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = items
	s.sets++
}

func testConfig(models ...string) *config.Config {
	return &config.Config{
		Gemini: config.GeminiConfig{
			Models:    models,
			MaxTokens: 2048,
			Timeout:   15 * time.Second,
		},
	}
}

const drinkListResponse = `[
  {"rank": 1, "category": "맥주", "name": "IPA", "grade": "A+", "emoji": "🍺", "explanation": "홉의 쌉쌀함이 기름기를 잡아줘요.", "imagePlaceholder": "🍺"},
  {"rank": 2, "category": "소주", "name": "참이슬", "grade": "A", "emoji": "🍶", "explanation": "깔끔하게 씻어내 주는 정석 조합이에요.", "imagePlaceholder": "🍶"},
  {"rank": 3, "category": "막걸리", "name": "생막걸리", "grade": "B+", "emoji": "🥛", "explanation": "구수한 맛이 의외로 잘 어울려요.", "imagePlaceholder": "🥛"}
]`

func TestRecommendSuccess(t *testing.T) {
	gen := &scriptedGenerator{responses: map[string]string{"model-a": drinkListResponse}}
	store := newRecordingStore()
	svc := NewService(testConfig("model-a"), gen, store)

	items, err := svc.Recommend(context.Background(), "삼겹살", FoodToDrink)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, "IPA", items[0].Name)
	require.Equal(t, []string{"model-a"}, gen.modelsTried())

	// the result was cached under the normalized key
	cached, ok := store.Get(context.Background(), "drink:삼겹살")
	require.True(t, ok)
	require.Equal(t, items, cached)
}

func TestRecommendCacheHitSkipsGenerator(t *testing.T) {
	gen := &scriptedGenerator{responses: map[string]string{"model-a": drinkListResponse}}
	store := newRecordingStore()
	svc := NewService(testConfig("model-a"), gen, store)

	first, err := svc.Recommend(context.Background(), "삼겹살", FoodToDrink)
	require.NoError(t, err)

	second, err := svc.Recommend(context.Background(), "삼겹살", FoodToDrink)
	require.NoError(t, err)
	require.Equal(t, first, second)

	require.Equal(t, []string{"model-a"}, gen.modelsTried(), "second call must be served from cache")
	require.Equal(t, 1, store.sets)
}

func TestRecommendCacheKeyNormalization(t *testing.T) {
	require.Equal(t, "drink:삼겹살", CacheKey("  삼겹살 ", FoodToDrink))
	require.Equal(t, "food:ipa", CacheKey("IPA", DrinkToFood))

	gen := &scriptedGenerator{responses: map[string]string{"model-a": drinkListResponse}}
	store := newRecordingStore()
	svc := NewService(testConfig("model-a"), gen, store)

	_, err := svc.Recommend(context.Background(), "Makgeolli", FoodToDrink)
	require.NoError(t, err)
	_, err = svc.Recommend(context.Background(), "  makgeolli  ", FoodToDrink)
	require.NoError(t, err)

	require.Equal(t, []string{"model-a"}, gen.modelsTried(),
		"case and whitespace variants share one cache entry")
}

func TestRecommendFallsThroughFailedModels(t *testing.T) {
	gen := &scriptedGenerator{
		errors: map[string]error{
			"model-a": errors.New("429 rate limited"),
			"model-b": errors.New("connection refused"),
		},
		responses: map[string]string{"model-c": drinkListResponse},
	}
	svc := NewService(testConfig("model-a", "model-b", "model-c"), gen, newRecordingStore())

	items, err := svc.Recommend(context.Background(), "치킨", FoodToDrink)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, []string{"model-a", "model-b", "model-c"}, gen.modelsTried())
}

func TestRecommendFallsThroughUnusableResponses(t *testing.T) {
	gen := &scriptedGenerator{
		responses: map[string]string{
			"model-a": "죄송하지만 추천을 드릴 수 없어요.", // no JSON array at all
			"model-b": `[{"rank": 1, "name": "only one", "grade": "A"}, {"rank": 2, "name": "two", "grade": "A"}]`,
			"model-c": drinkListResponse,
		},
	}
	svc := NewService(testConfig("model-a", "model-b", "model-c"), gen, newRecordingStore())

	items, err := svc.Recommend(context.Background(), "피자", FoodToDrink)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, []string{"model-a", "model-b", "model-c"}, gen.modelsTried())
}

func TestRecommendValidationErrorStopsChain(t *testing.T) {
	gen := &scriptedGenerator{
		responses: map[string]string{
			"model-a": `[{"error": true, "message": "입력하신 값은 음식이 아닙니다."}]`,
			"model-b": drinkListResponse,
		},
	}
	store := newRecordingStore()
	svc := NewService(testConfig("model-a", "model-b"), gen, store)

	items, err := svc.Recommend(context.Background(), "컴퓨터", FoodToDrink)
	require.Nil(t, items)

	ve, ok := common.AsValidationError(err)
	require.True(t, ok)
	require.Equal(t, "입력하신 값은 음식이 아닙니다.", ve.Message)

	require.Equal(t, []string{"model-a"}, gen.modelsTried(),
		"a rejection describes the subject, later models must not be tried")
	require.Equal(t, 0, store.sets, "validation errors are never cached")
}

func TestRecommendAllModelsExhausted(t *testing.T) {
	gen := &scriptedGenerator{
		errors: map[string]error{
			"model-a": errors.New("429 rate limited"),
			"model-b": errors.New("503 overloaded"),
		},
	}
	store := newRecordingStore()
	svc := NewService(testConfig("model-a", "model-b"), gen, store)

	items, err := svc.Recommend(context.Background(), "김치찌개", FoodToDrink)
	require.Nil(t, items)
	require.ErrorIs(t, err, common.ErrAllModelsExhausted)
	require.Equal(t, []string{"model-a", "model-b"}, gen.modelsTried())
	require.Equal(t, 0, store.sets, "failed resolutions must leave the cache unset")
}

func TestRecommendEmptySubject(t *testing.T) {
	gen := &scriptedGenerator{}
	svc := NewService(testConfig("model-a"), gen, newRecordingStore())

	_, err := svc.Recommend(context.Background(), "   ", FoodToDrink)
	require.ErrorIs(t, err, common.ErrInvalidSubject)
	require.Empty(t, gen.modelsTried())
}

func TestRecommendInvalidDirection(t *testing.T) {
	gen := &scriptedGenerator{}
	svc := NewService(testConfig("model-a"), gen, newRecordingStore())

	_, err := svc.Recommend(context.Background(), "삼겹살", Direction("sideways"))
	require.ErrorIs(t, err, common.ErrInvalidRequest)
}

func TestRecommendContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := &scriptedGenerator{responses: map[string]string{"model-a": drinkListResponse}}
	svc := NewService(testConfig("model-a"), gen, newRecordingStore())

	_, err := svc.Recommend(ctx, "삼겹살", FoodToDrink)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, gen.modelsTried())
}

func TestRecommendNilStore(t *testing.T) {
	gen := &scriptedGenerator{responses: map[string]string{"model-a": drinkListResponse}}
	svc := NewService(testConfig("model-a"), gen, nil)

	items, err := svc.Recommend(context.Background(), "삼겹살", FoodToDrink)
	require.NoError(t, err)
	require.Len(t, items, 3)

	// without a store every call goes to the generator
	_, err = svc.Recommend(context.Background(), "삼겹살", FoodToDrink)
	require.NoError(t, err)
	require.Equal(t, []string{"model-a", "model-a"}, gen.modelsTried())
}

func TestRecommendDirectionSelectsPrompt(t *testing.T) {
	gen := &scriptedGenerator{responses: map[string]string{"model-a": drinkListResponse}}
	svc := NewService(testConfig("model-a"), gen, nil)

	_, err := svc.Recommend(context.Background(), "소주", DrinkToFood)
	require.NoError(t, err)
	require.Len(t, gen.prompts, 1)
	require.Contains(t, gen.prompts[0], "선택한 술: 소주")
	require.Contains(t, gen.prompts[0], "입력하신 값은 술이 아닙니다.")
}
