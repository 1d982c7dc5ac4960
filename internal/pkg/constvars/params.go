package constvars

const (
	URLParamVisitID     = "visit_id"
	URLParamHospitalID  = "hospital_id"
	URLParamIsolationID = "isolation_id"
	URLParamUserID      = "user_id"
)

const (
	URLQueryParamPage     = "page"
	URLQueryParamPageSize = "page_size"
	URLQueryParamEmpNo    = "empNo"
)
