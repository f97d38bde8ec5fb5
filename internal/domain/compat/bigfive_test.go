package compat

import "testing"

func TestBigFiveFromAssessment_MidpointAnswers(t *testing.T) {
	p := PersonalityAssessment{
		Leadership: 3, Traditionalism: 3, Peacekeeper: 3,
		Brainstormer: 3, CalmUnderPressure: 3, Listener: 3,
		Adaptable: 3, ControlNeed: 3, Challenger: 3,
	}
	b := BigFiveFromAssessment(p)

	for name, v := range map[string]int{
		"extraversion":      b.Extraversion,
		"openness":          b.Openness,
		"agreeableness":     b.Agreeableness,
		"conscientiousness": b.Conscientiousness,
		"neuroticism":       b.Neuroticism,
	} {
		if v != 50 {
			t.Fatalf("%s: expected 50 for midpoint answers, got %d", name, v)
		}
	}
}

func TestBigFiveFromAssessment_UnansweredDefaultsToMidpoint(t *testing.T) {
	b := BigFiveFromAssessment(PersonalityAssessment{})
	if b.Conscientiousness != 50 || b.Neuroticism != 50 {
		t.Fatalf("expected zero-value assessment to behave as midpoint, got %+v", b)
	}
}

func TestBigFiveFromAssessment_Directionality(t *testing.T) {
	calm := BigFiveFromAssessment(PersonalityAssessment{
		CalmUnderPressure: 5, Adaptable: 5, ControlNeed: 1,
	})
	anxious := BigFiveFromAssessment(PersonalityAssessment{
		CalmUnderPressure: 1, Adaptable: 1, ControlNeed: 5,
	})
	if calm.Neuroticism >= anxious.Neuroticism {
		t.Fatalf("calm profile should have lower neuroticism: %d vs %d", calm.Neuroticism, anxious.Neuroticism)
	}

	outgoing := BigFiveFromAssessment(PersonalityAssessment{
		Leadership: 5, Brainstormer: 5, Listener: 1,
	})
	reserved := BigFiveFromAssessment(PersonalityAssessment{
		Leadership: 1, Brainstormer: 1, Listener: 5,
	})
	if outgoing.Extraversion <= reserved.Extraversion {
		t.Fatalf("outgoing profile should have higher extraversion: %d vs %d", outgoing.Extraversion, reserved.Extraversion)
	}
}

func TestBigFiveFromAssessment_ClampedRange(t *testing.T) {
	extreme := PersonalityAssessment{
		Leadership: 9, Traditionalism: -4, Peacekeeper: 7,
		Brainstormer: 11, CalmUnderPressure: 5, Listener: -1,
		Adaptable: 8, ControlNeed: 0, Challenger: 6,
	}
	b := BigFiveFromAssessment(extreme)

	for name, v := range map[string]int{
		"extraversion":      b.Extraversion,
		"openness":          b.Openness,
		"agreeableness":     b.Agreeableness,
		"conscientiousness": b.Conscientiousness,
		"neuroticism":       b.Neuroticism,
	} {
		if v < 0 || v > 100 {
			t.Fatalf("%s out of range: %d", name, v)
		}
	}
}
