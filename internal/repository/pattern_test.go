package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunningMean_TwoSeverities(t *testing.T) {
	// Подготовка: пустой bucket
	mean, count := 0.0, 0

	// Действие: записываем серьезности 0.4 и 0.8
	mean = runningMean(mean, count, 0.4)
	count++
	mean = runningMean(mean, count, 0.8)
	count++

	// Проверки
	assert.InDelta(t, 0.6, mean, 1e-9)
	assert.Equal(t, 2, count)
}

func TestRunningMean_MatchesArithmeticMean(t *testing.T) {
	// Подготовка: произвольная последовательность весов серьезности
	values := []float64{0.3, 1.0, 0.6, 0.9, 0.3, 0.6, 1.0}

	// Действие: скользящее среднее по одному элементу за шаг
	mean, count := 0.0, 0
	sum := 0.0
	for _, v := range values {
		mean = runningMean(mean, count, v)
		count++
		sum += v
	}

	// Проверки: результат совпадает с арифметическим средним
	assert.InDelta(t, sum/float64(len(values)), mean, 1e-9)
	assert.Equal(t, len(values), count)
}

func TestRunningMean_FirstValue(t *testing.T) {
	// Первый элемент выборки становится ее средним
	assert.InDelta(t, 0.9, runningMean(0, 0, 0.9), 1e-9)
}
