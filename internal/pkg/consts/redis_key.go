package consts

const (
	SessionRevokedKey   = "session:revoked:"
	AnalyticsCacheKey   = "analytics:record:"
	GenerateCooldownKey = "content:generate:cooldown:"
)

const (
	BestTimeJobLock = "lock:best:time:job"
)
