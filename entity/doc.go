// Package entity extracts the entities from short social posts: links with and without a scheme,
// @mentions, /channels, $cashtags, #hashtags and the handles from the other platforms, like "name.twitter".
//
// The text is processed in two stages. The tokenizer, a state machine driven by a [Reader],
// assigns a [Category] to every char of the input in a single pass. Then [BuildTree] coalesces
// the runs of the same Category into the [Node] values.
//
//	nodes := entity.Parse("gm @dwr, $DEGEN to /base https://warpcast.com")
//
// The Nodes always cover the whole input, so rendering them back to back reproduces the text.
package entity
