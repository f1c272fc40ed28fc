package constvars

const (
	RedisKeyAnalysisByResultFormat = "analysis:result:%s"
)
