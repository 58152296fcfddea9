// Package builtin provides ready-made transformers for common Go value
// types, all in the "go" namespace:
//
//	go.time      time.Time      <-> RFC 3339 string with nanoseconds
//	go.duration  time.Duration  <-> "2h45m0s"
//	go.bigint    *big.Int       <-> decimal string
//	go.bigrat    *big.Rat       <-> "a/b"
//	go.uuid      uuid.UUID      <-> canonical string
//	go.bytes     []byte         <-> standard base64 string
//	go.complex   complex128     <-> [re, im]
//	go.nan       NaN            <-> null
//	go.inf       +Inf           <-> null
//	go.neginf    -Inf           <-> null
//
// go.time keeps the instant and the UTC offset. The Location name and the
// monotonic clock reading are lost, so a restored time is Equal to the
// original but not deep-equal to it, and carries a fixed zone.
//
// Sets are selected with an options.CategoryEnum mask.
package builtin
