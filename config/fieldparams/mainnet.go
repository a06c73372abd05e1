package field_params

const (
	RootLength            = 32 // RootLength defines the byte length of a Merkle root.
	BLSSecretKeyLength    = 32 // BLSSecretKeyLength defines the byte length of a BLS secret key.
	BLSSignatureLength    = 96 // BLSSignatureLength defines the byte length of a BLSSignature.
	BLSPubkeyLength       = 48 // BLSPubkeyLength defines the byte length of a BLSSignature.
	FeeRecipientLength    = 20 // FeeRecipientLength defines the byte length of a fee recipient.
	VersionLength         = 4  // VersionLength defines the byte length of a fork version number.
	DomainTypeLength      = 4  // DomainTypeLength defines the byte length of a signature domain type.
	DomainLength          = 32 // DomainLength defines the byte length of a signature domain.
	ForkDataRootPrefixLen = 28 // ForkDataRootPrefixLen is the number of fork data root bytes kept in a domain.
)
