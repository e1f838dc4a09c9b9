package schema

// Target table names.
const (
	TechnicianReportsTable = "technician_reports"
	DailyCPUSReportsTable  = "daily_cpus_reports"
	RepeatRepairsTable     = "repeat_repairs"
)

// TechnicianReportColumns is the fixed column list of technician_reports.
// `id` and `created_at` are database-managed and never mapped.
var TechnicianReportColumns = []string{
	"sr",
	"ro_no",
	"mileage",
	"msi",
	"no_of_jobs",
	"reg_no",
	"variant",
	"customer_name",
	"service_adviser",
	"technician_name",
	"bay",
	"operations",
	"creation_time",
	"p_start_time",
	"p_end_time",
	"p_lead_time",
	"gatepass_time",
	"overall_lead_time",
	"remarks",
}

// DailyCPUSReportColumns is the fixed column list of daily_cpus_reports.
var DailyCPUSReportColumns = []string{
	"service_date",
	"chassis_number",
	"ro_no",
	"service_nature",
	"campaign_type",
	"customer_source",
	"customer_name",
	"customer_cnic",
	"customer_ntn",
	"customer_dob",
	"customer_mobile_no",
	"customer_landline_number",
	"customer_mobile_no2",
	"customer_email",
	"customer_type",
	"house_no",
	"street_no",
	"city_of_residence",
	"postal_code",
	"insurance_status",
	"insurance_company",
	"insurance_expiry_date",
	"labour_sales",
	"parts_sales",
	"sublet_sales",
	"odometer_reading",
	"vehicle_type",
	"model_year",
	"reg_no",
	"service_sub_category",
	"vehicle_make",
	"receiving_date_time",
	"delivery_date_time",
	"promised_date_time",
	"prefered_date_time_for_psfu",
	"voc",
	"sa_ta_instructions",
	"job_performed_by_technicians",
	"controller_remarks",
	"service_avisor_name",
	"technical_advisor_name",
	"job_controller_name",
	"technician_name",
	"vehicle_variant",
	"imc_vehic",
	"status",
}

// RepeatRepairColumns is the fixed column list of repeat_repairs.
var RepeatRepairColumns = []string{
	"date",
	"total_vehicle_delivered",
	"repeat_repair_count",
	"repeat_repair_percentage",
}

// Aliases declares known irregular source headers per target field. An alias
// is tried before the normalized-equality match, so a misspelled header in
// the upstream export keeps matching even if a correctly spelled column ever
// appears beside it.
var Aliases = map[string][]string{
	// The upstream DMS export misspells "advisor".
	"service_advisor_name": {"service_avisor_name"},
	"service_avisor_name":  {"service_advisor_name"},
}

// Per-column coercion groups used by the bulk loader. Any column not listed
// here loads as plain text.
var (
	TechnicianClockColumns = map[string]bool{
		"creation_time":     true,
		"p_start_time":      true,
		"p_end_time":        true,
		"p_lead_time":       true,
		"gatepass_time":     true,
		"overall_lead_time": true,
	}
	TechnicianIntColumns = map[string]bool{
		"mileage":    true,
		"no_of_jobs": true,
	}

	DailyDateColumns = map[string]bool{
		"service_date":          true,
		"customer_dob":          true,
		"insurance_expiry_date": true,
	}
	DailyDateTimeColumns = map[string]bool{
		"receiving_date_time":         true,
		"delivery_date_time":          true,
		"promised_date_time":          true,
		"prefered_date_time_for_psfu": true,
	}
	DailyCurrencyColumns = map[string]bool{
		"labour_sales": true,
		"parts_sales":  true,
		"sublet_sales": true,
	}
	DailyIntColumns = map[string]bool{
		"odometer_reading": true,
	}
)
