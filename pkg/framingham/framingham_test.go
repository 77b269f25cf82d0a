package framingham

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgePoints(t *testing.T) {
	cases := []struct {
		age    int
		gender Gender
		want   int
	}{
		{25, Male, -9},
		{25, Female, -7},
		{18, Male, -4},
		{38, Female, -3},
		{42, Male, 0},
		{57, Male, 8},
		{67, Female, 12},
		{79, Female, 16},
		{85, Male, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, AgePoints(tc.age, tc.gender), "age %d gender %d", tc.age, tc.gender)
	}
}

func TestBPPoints(t *testing.T) {
	assert.Equal(t, 0, BPPoints(119, false, Male))
	assert.Equal(t, 1, BPPoints(125, false, Male))
	assert.Equal(t, 2, BPPoints(150, false, Male))
	assert.Equal(t, 3, BPPoints(150, false, Female))
	assert.Equal(t, 6, BPPoints(170, true, Male))
	assert.Equal(t, 4, BPPoints(170, false, Female))
}

func TestSmokingPoints(t *testing.T) {
	assert.Equal(t, 0, SmokingPoints(false, 30, Male))
	assert.Equal(t, 8, SmokingPoints(true, 30, Male))
	assert.Equal(t, 9, SmokingPoints(true, 30, Female))
	assert.Equal(t, 4, SmokingPoints(true, 55, Female))
	assert.Equal(t, 0, SmokingPoints(true, 90, Male))
}

func TestRiskFromPoints(t *testing.T) {
	assert.Equal(t, "<1%", RiskFromPoints(-3, Male))
	assert.Equal(t, "1%", RiskFromPoints(4, Male))
	assert.Equal(t, "10%", RiskFromPoints(12, Male))
	assert.Equal(t, "30%+", RiskFromPoints(17, Male))
	assert.Equal(t, "<1%", RiskFromPoints(8, Female))
	assert.Equal(t, "11%", RiskFromPoints(20, Female))
	assert.Equal(t, "30%+", RiskFromPoints(25, Female))
}

func TestCalculate(t *testing.T) {
	got := Calculate(Input{Age: 40, Gender: Male, SystolicBP: 120})
	assert.Equal(t, Result{Points: 1, Risk: "1%"}, got)

	// 10 (age) + 5 (bp on meds) + 1 (smoker) + 3 (diabetic)
	got = Calculate(Input{Age: 62, Gender: Male, SystolicBP: 150, OnBPMeds: true, Smoker: true, Diabetic: true})
	assert.Equal(t, Result{Points: 19, Risk: "30%+"}, got)

	// 14 (age) + 4 (bp) + 1 (smoker) + 4 (diabetic)
	got = Calculate(Input{Age: 72, Gender: Female, SystolicBP: 165, Smoker: true, Diabetic: true})
	assert.Equal(t, Result{Points: 23, Risk: "22%"}, got)
}
