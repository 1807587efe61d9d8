package protocol

import "fmt"

// A Version is a QUIC protocol version, as carried in the long header.
type Version uint32

const (
	// VersionNegotiation is the reserved version number of a Version Negotiation packet
	VersionNegotiation Version = 0
	// Version1 is RFC 9000 QUIC
	Version1 Version = 0x1
)

func (v Version) String() string {
	switch v {
	case VersionNegotiation:
		return "negotiation"
	case Version1:
		return "v1"
	default:
		return fmt.Sprintf("%#x", uint32(v))
	}
}

// IsSupportedVersion returns true if the server supports this version
func IsSupportedVersion(supported []Version, v Version) bool {
	for _, t := range supported {
		if t == v {
			return true
		}
	}
	return false
}
