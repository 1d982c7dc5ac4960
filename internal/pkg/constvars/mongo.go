package constvars

const (
	MongoCollectionUsers         = "users"
	MongoCollectionVisits        = "clinic_visits"
	MongoCollectionHospitals     = "hospitals"
	MongoCollectionIsolations    = "isolations"
	MongoCollectionTokenCounters = "token_counters"
)
