// Package framingham computes a simplified Framingham ten-year coronary risk
// score from age, gender, systolic pressure, smoking and diabetes status.
// Cholesterol terms are scored as zero.
package framingham

type Gender int

const (
	Male Gender = iota
	Female
)

// Input holds the risk factors. SystolicBP is in mmHg.
type Input struct {
	Age        int
	Gender     Gender
	SystolicBP int
	OnBPMeds   bool
	Smoker     bool
	Diabetic   bool
}

type Result struct {
	Points int    `json:"points"`
	Risk   string `json:"risk"`
}

type band struct {
	maxAge int
	points int
}

var agePoints = map[Gender][]band{
	Male:   {{39, -4}, {44, 0}, {49, 3}, {54, 6}, {59, 8}, {64, 10}, {69, 11}, {74, 12}, {79, 13}},
	Female: {{39, -3}, {44, 0}, {49, 3}, {54, 6}, {59, 8}, {64, 10}, {69, 12}, {74, 14}, {79, 16}},
}

var youngestAgePoints = map[Gender]int{Male: -9, Female: -7}

var smokingPoints = map[Gender][]band{
	Male:   {{49, 5}, {59, 3}, {69, 1}, {79, 1}},
	Female: {{49, 7}, {59, 4}, {69, 2}, {79, 1}},
}

var youngestSmokingPoints = map[Gender]int{Male: 8, Female: 9}

// systolic thresholds: <120, <=129, <=139, <=159, above
var bpPoints = map[Gender]map[bool][5]int{
	Male:   {false: {0, 1, 2, 2, 3}, true: {0, 3, 4, 5, 6}},
	Female: {false: {0, 1, 2, 3, 4}, true: {0, 3, 4, 5, 6}},
}

var diabetesPoints = map[Gender]int{Male: 3, Female: 4}

var maleRisk = map[int]string{
	0: "1%", 1: "1%", 2: "1%", 3: "1%", 4: "1%", 5: "2%", 6: "2%", 7: "3%", 8: "4%",
	9: "5%", 10: "6%", 11: "8%", 12: "10%", 13: "12%", 14: "16%", 15: "20%", 16: "25%",
}

var femaleRisk = map[int]string{
	9: "1%", 10: "1%", 11: "1%", 12: "1%", 13: "2%", 14: "2%", 15: "3%", 16: "4%",
	17: "5%", 18: "6%", 19: "8%", 20: "11%", 21: "14%", 22: "17%", 23: "22%", 24: "27%",
}

func Calculate(in Input) Result {
	points := AgePoints(in.Age, in.Gender) +
		BPPoints(in.SystolicBP, in.OnBPMeds, in.Gender) +
		SmokingPoints(in.Smoker, in.Age, in.Gender)
	if in.Diabetic {
		points += diabetesPoints[in.Gender]
	}
	return Result{Points: points, Risk: RiskFromPoints(points, in.Gender)}
}

// AgePoints scores age. Ages under 20 fall into the 35-39 band and ages
// over 79 score zero.
func AgePoints(age int, g Gender) int {
	if age >= 20 && age <= 34 {
		return youngestAgePoints[g]
	}
	return lookup(agePoints[g], age)
}

func BPPoints(systolic int, onMeds bool, g Gender) int {
	row := bpPoints[g][onMeds]
	switch {
	case systolic < 120:
		return row[0]
	case systolic <= 129:
		return row[1]
	case systolic <= 139:
		return row[2]
	case systolic <= 159:
		return row[3]
	default:
		return row[4]
	}
}

func SmokingPoints(smoker bool, age int, g Gender) int {
	if !smoker {
		return 0
	}
	if age >= 20 && age <= 39 {
		return youngestSmokingPoints[g]
	}
	return lookup(smokingPoints[g], age)
}

func RiskFromPoints(points int, g Gender) string {
	if g == Male {
		if points < 0 {
			return "<1%"
		}
		if risk, ok := maleRisk[points]; ok {
			return risk
		}
		return "30%+"
	}

	if points < 9 {
		return "<1%"
	}
	if risk, ok := femaleRisk[points]; ok {
		return risk
	}
	return "30%+"
}

func lookup(bands []band, age int) int {
	for _, b := range bands {
		if age <= b.maxAge {
			return b.points
		}
	}
	return 0
}
