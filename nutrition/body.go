package nutrition

// CalculateBmi computes BMI from canonical weight and height. A height of
// zero or less yields {0, Normal weight} rather than an error, since callers
// always expect a result. The category is taken from the unrounded value;
// Value is rounded to 1 decimal.
func CalculateBmi(weightKG, heightCM float64) BmiResult {
	if heightCM <= 0 {
		return BmiResult{Value: 0, Category: NormalWeight}
	}
	heightM := heightCM / 100
	bmi := weightKG / (heightM * heightM)
	return BmiResult{
		Value:    round1(bmi),
		Category: BmiCategoryFor(bmi),
	}
}

// BmiCategoryFor maps a BMI onto the WHO bands. Upper bounds are exclusive
// so the bands cover every real value with no gaps (24.95 is Normal weight).
func BmiCategoryFor(bmi float64) BmiCategory {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return NormalWeight
	case bmi < 30:
		return Overweight
	default:
		return Obesity
	}
}

// EstimateBodyFatPct applies the Deurenberg formula:
//
//	1.20*bmi + 0.23*age - 10.8*(male ? 1 : 0) - 5.4
//
// rounded to 1 decimal. The result is not clamped and goes negative for very
// low BMI at young ages; it is an approximation.
func EstimateBodyFatPct(bmi float64, age int, sex Sex) float64 {
	sexFlag := 0.0
	if sex == Male {
		sexFlag = 1
	}
	return round1(1.20*bmi + 0.23*float64(age) - 10.8*sexFlag - 5.4)
}
