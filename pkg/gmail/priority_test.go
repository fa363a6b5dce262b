package gmail

import "testing"

func TestClassifyPriority(t *testing.T) {
	cases := []struct {
		subject string
		want    string
	}{
		{"URGENT: server down", PriorityUrgent},
		{"Please respond ASAP", PriorityUrgent},
		{"Important: quarterly review", PriorityImportant},
		{"Deadline extended to Friday", PriorityImportant},
		{"Lunch on Saturday?", PriorityNormal},
		{"", PriorityNormal},
	}

	for _, tc := range cases {
		t.Run(tc.subject, func(t *testing.T) {
			if got := classifyPriority(tc.subject); got != tc.want {
				t.Errorf("classifyPriority(%q) = %s, want %s", tc.subject, got, tc.want)
			}
		})
	}
}
