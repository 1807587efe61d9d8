//go:build gomock || generate

package quicgate

//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -build_flags=\"-tags=gomock\" -package quicgate -self_package github.com/quicgate/quicgate -destination mock_engine_test.go github.com/quicgate/quicgate Engine,EngineConn"

//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -build_flags=\"-tags=gomock\" -package quicgate -self_package github.com/quicgate/quicgate -destination mock_sender_test.go github.com/quicgate/quicgate Sender"
type Sender = sender
