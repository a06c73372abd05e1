package eth

// ForkData is the container whose hash tree root, truncated to 28 bytes,
// follows the domain type in a signature domain.
type ForkData struct {
	CurrentVersion        []byte `json:"current_version" ssz-size:"4"`
	GenesisValidatorsRoot []byte `json:"genesis_validators_root" ssz-size:"32"`
}

// SigningData pairs an object root with a signature domain. Its hash tree
// root is the signing root, the message actually passed to BLS sign/verify.
type SigningData struct {
	ObjectRoot []byte `json:"object_root" ssz-size:"32"`
	Domain     []byte `json:"domain" ssz-size:"32"`
}
