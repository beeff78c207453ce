package usecase

// Export unexported functions for testing
var (
	VerifySignatureForTest             = verifySignature
	CreateOrUpdateBigQueryTableForTest = createOrUpdateBigQueryTable
)
