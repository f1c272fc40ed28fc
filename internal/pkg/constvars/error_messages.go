package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s",
	"max":      "maximum at %s",
	"len":      "must be %s characters long",
	"oneof":    "must be one of [%s]",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"numeric":  "must be a number",
	"uuid":     "must be a valid UUID",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
	"gte":   true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientResultNotFound                = "exam result not found"
	ErrClientExamNotFound                  = "exam type not found"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientAnalysisNotFound              = "analysis result not found"
	ErrClientAnalyzerNotFound              = "no analyzer is available for this exam type"
	ErrClientScoringFailed                 = "the exam result could not be scored"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevURLParamIDValidationFailed = "invalid URL parameter: %s"

	ErrDevResultNotFound   = "exam result not found: %s"
	ErrDevExamNotFound     = "exam not found: %s"
	ErrDevPatientNotFound  = "patient not found: %s"
	ErrDevAnalysisNotFound = "analysis result not found: %s"
	ErrDevAnalyzerNotFound = "no analyzer registered for exam name: %s"
	ErrDevScoringFailed    = "analyzer failed to score result"
	ErrDevAnalysisConflict = "analysis result already exists for result: %s"

	ErrDevDBFailedToFindData   = "failed to find data in database"
	ErrDevDBFailedToInsertData = "failed to insert data into database"
	ErrDevDBFailedToDeleteData = "failed to delete data from database"
	ErrDevDBFailedToIterate    = "failed to iterate database rows"

	ErrDevRedisGetData        = "failed to get data from redis"
	ErrDevRedisSetData        = "failed to set data in redis"
	ErrDevRedisDeleteData     = "failed to delete data from redis"
	ErrDevRabbitMQPublish     = "failed to publish message to queue: %s"
	ErrDevRabbitMQNoConfirm   = "publish not confirmed by broker for queue: %s"
	ErrDevRabbitMQDeclareFail = "failed to declare queue: %s"
)
