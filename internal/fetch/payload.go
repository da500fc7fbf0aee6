package fetch

// Payload is the capability a fetched value needs: it can be rendered for
// notices and duplicated so a successful fetch hands back an independent copy.
type Payload[T any] interface {
	String() string
	Clone() T
}

// Text is the default payload, a plain immutable string.
type Text string

// String returns the text unchanged.
func (t Text) String() string { return string(t) }

// Clone returns t; strings are immutable so the value is its own copy.
func (t Text) Clone() Text { return t }

// PayloadFor builds the default payload announced for an endpoint.
func PayloadFor(endpoint string) Text {
	return Text("Data from " + endpoint)
}

var _ Payload[Text] = Text("")
