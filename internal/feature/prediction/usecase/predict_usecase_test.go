package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	companyentity "stock_prediction/internal/feature/companies/domain/entity"
	"stock_prediction/internal/feature/prediction/domain/entity"
	"stock_prediction/internal/feature/prediction/usecase"
	"stock_prediction/internal/shared/randsrc"
)

type stubLister []companyentity.Company

func (s stubLister) List(context.Context) []companyentity.Company { return s }

// mockEstimator はPriceEstimatorインターフェースのモック実装です。
type mockEstimator struct {
	EstimateFunc func(symbol string) (float64, bool)
	symbols      []string
}

func (m *mockEstimator) Estimate(_ context.Context, symbol string) (float64, bool) {
	m.symbols = append(m.symbols, symbol)
	return m.EstimateFunc(symbol)
}

type constSource struct{ u float64 }

func (c constSource) Float64() float64     { return c.u }
func (c constSource) NormFloat64() float64 { return 0 }

func twentyCompanies() stubLister {
	out := make(stubLister, 20)
	for i := range out {
		out[i] = companyentity.Company{Name: fmt.Sprintf("Company %d", i), Symbol: fmt.Sprintf("SYM%d", i)}
	}
	return out
}

func isTwoDecimals(v float64) bool {
	return math.Abs(v*100-math.Round(v*100)) < 1e-6
}

func TestPredictUsecase_PredictAll_MixedResults(t *testing.T) {
	t.Parallel()

	companies := twentyCompanies()
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	est := &mockEstimator{
		EstimateFunc: func(symbol string) (float64, bool) {
			// 偶数番目だけ実データがある
			var n int
			_, _ = fmt.Sscanf(symbol, "SYM%d", &n)
			if n%2 == 0 {
				return 123.4567, true
			}
			return 0, false
		},
	}
	uc := usecase.NewPredictUsecase(companies, est, constSource{u: 0.5}, func() time.Time { return fixed })

	preds, err := uc.PredictAll(context.Background())
	require.NoError(t, err)
	require.Len(t, preds, 20)
	assert.Equal(t, []string(symbolsOf(companies)), est.symbols, "estimator must be called once per company in order")

	for i, p := range preds {
		assert.Equal(t, companies[i].Name, p.Company)
		assert.Equal(t, companies[i].Symbol, p.Symbol)
		assert.Equal(t, fixed, p.Timestamp)
		assert.True(t, isTwoDecimals(p.PredictedPrice), "price %v", p.PredictedPrice)
		assert.Greater(t, p.PredictedPrice, 0.0)
		if i%2 == 0 {
			assert.Equal(t, 123.46, p.PredictedPrice)
			assert.Empty(t, p.Note)
			assert.False(t, p.IsFallback())
		} else {
			assert.Equal(t, 275.0, p.PredictedPrice)
			assert.Equal(t, entity.FallbackNote, p.Note)
			assert.True(t, p.IsFallback())
		}
	}
}

func symbolsOf(cs stubLister) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Symbol)
	}
	return out
}

func TestPredictUsecase_PredictAll_AllFallbacksStayInRange(t *testing.T) {
	t.Parallel()

	est := &mockEstimator{EstimateFunc: func(string) (float64, bool) { return 0, false }}
	uc := usecase.NewPredictUsecase(twentyCompanies(), est, randsrc.New(11), nil)

	preds, err := uc.PredictAll(context.Background())
	require.NoError(t, err)
	require.Len(t, preds, 20)
	for _, p := range preds {
		assert.GreaterOrEqual(t, p.PredictedPrice, usecase.FallbackMinPrice)
		assert.LessOrEqual(t, p.PredictedPrice, usecase.FallbackMaxPrice)
		assert.True(t, isTwoDecimals(p.PredictedPrice))
		assert.Equal(t, entity.FallbackNote, p.Note)
		assert.False(t, p.Timestamp.IsZero())
	}
}

func TestPredictUsecase_PredictAll_FallbackBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		u    float64
		want float64
	}{
		{u: 0, want: 50},
		{u: 0.999999999, want: 500},
		{u: 0.1, want: 95},
	}
	for _, tt := range tests {
		est := &mockEstimator{EstimateFunc: func(string) (float64, bool) { return 0, false }}
		uc := usecase.NewPredictUsecase(stubLister{{Name: "Apple Inc.", Symbol: "AAPL"}}, est, constSource{u: tt.u}, nil)

		preds, err := uc.PredictAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, tt.want, preds[0].PredictedPrice, "u=%v", tt.u)
	}
}

func TestPredictUsecase_PredictAll_SmallEstimateKeepsFloor(t *testing.T) {
	t.Parallel()

	est := &mockEstimator{EstimateFunc: func(string) (float64, bool) { return usecase.MinPrice, true }}
	uc := usecase.NewPredictUsecase(stubLister{{Name: "Penny Co.", Symbol: "PNY"}}, est, constSource{}, nil)

	preds, err := uc.PredictAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.01, preds[0].PredictedPrice)
	assert.Empty(t, preds[0].Note)
}

func TestPredictUsecase_PredictAll_EmptyCatalogue(t *testing.T) {
	t.Parallel()

	uc := usecase.NewPredictUsecase(stubLister{}, &mockEstimator{}, constSource{}, nil)

	preds, err := uc.PredictAll(context.Background())
	assert.Nil(t, preds)
	assert.True(t, errors.Is(err, usecase.ErrNoCompanies))
}
