package weft

// Version is the released version of weft, overridable at build time with
// -ldflags "-X github.com/aretw0/weft.Version=...".
var Version = "0.3.0"
