package schema

import "testing"

func TestNormalizeColumn(t *testing.T) {
	cases := map[string]string{
		"No. of\nJobs":        "no_of_jobs",
		"SA/TA Instructions":  "sa_ta_instructions",
		"P.Start Time":        "p_start_time",
		"RECEIVING_DATE_TIME": "receiving_date_time",
		"Remarks:":            "remarks",
		"  Reg. No  ":         "reg_no",
		"Overall Lead-Time":   "overall_lead_time",
	}
	for in, want := range cases {
		if got := NormalizeColumn(in); got != want {
			t.Errorf("NormalizeColumn(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeColumnIdempotent(t *testing.T) {
	inputs := []string{"No. of\nJobs", "service_avisor_name", "RO No", "Bay"}
	for _, in := range inputs {
		once := NormalizeColumn(in)
		if twice := NormalizeColumn(once); twice != once {
			t.Errorf("NormalizeColumn(%q) not idempotent: %q then %q", in, once, twice)
		}
	}
}
