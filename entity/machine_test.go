package entity

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

// run is a piece of the expected classification: every char of s has the Category c.
type run struct {
	s string
	c Category
}

// expect builds the expected Category array, the trailing EndOfInput slot included.
func expect(runs ...run) []Category {
	var out []Category
	for _, r := range runs {
		for i := 0; i < utf8.RuneCountInString(r.s); i++ {
			out = append(out, r.c)
		}
	}
	return append(out, EndOfInput)
}

func classify(t *testing.T, p *Parser, input string) []Category {
	t.Helper()

	got := p.Classify(input)
	require.Len(t, got, utf8.RuneCountInString(input)+1)
	require.Equal(t, EndOfInput, got[len(got)-1])
	require.NotContains(t, got[:len(got)-1], Unclassified)

	return got
}

func TestClassifySingle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Category
	}{
		{"empty", "", expect()},
		{"username", "@test", expect(run{"@test", UserName})},
		{"cash", "$test", expect(run{"$test", Cash})},
		{"channel", "/test", expect(run{"/test", Channel})},
		{"channel with slash", "/test/test", expect(run{"/test/test", Character})},
		{"channel with dash", "/test-test", expect(run{"/test-test", Channel})},
		{"channel leading dash", "/-test", expect(run{"/-test", Character})},
		{"twitter", "test.twitter", expect(run{"test.twitter", CustomUser})},
		{"lens", "test.lens", expect(run{"test.lens", CustomUser})},
		{"suffix case", "Test.GitHub", expect(run{"Test.GitHub", CustomUser})},
		{"suffix at start", ".twitter", expect(run{".twitter", Character})},
		{"suffix inside word", "test.twitterx", expect(run{"test.twitterx", Character})},
		{"url", "https://test.com", expect(run{"https://test.com", Url})},
		{"url upper", "HTTPS://x.io", expect(run{"HTTPS://x.io", Url})},
		{"http", "http://x", expect(run{"http://x", Url})},
		{"not a scheme", "hello", expect(run{"hello", Character})},
		{"headless", "test.com", expect(run{"test.com", Url})},
		{"headless subdomain", "test.host.com", expect(run{"test.host.com", Url})},
		{"headless path", "vision.io/0x/dos", expect(run{"vision.io/0x/dos", Url})},
		{"headless port", "x.io:8080/a", expect(run{"x.io:8080/a", Url})},
		{"unknown tld", "test.unknowntld", expect(run{"test.unknowntld", Character})},
		{"headless trailing dot", "test.com.", expect(run{"test.com", Url}, run{".", Character})},
		{"sentence dot", "done. ok", expect(run{"done. ok", Character})},
		{"hashtag", "#test", expect(run{"#test", HashTag})},
		{"hashtag unicode", "#日本1", expect(run{"#日本1", HashTag})},
		{"hashtag ends at underscore", "#test_x", expect(run{"#test", HashTag}, run{"_x", Character})},
		{"hash before underscore", "#_x", expect(run{"#_x", Character})},
		{"lone hash", "# x", expect(run{"# x", Character})},
		{"lone at", "@ x", expect(run{"@ x", Character})},
		{"lone dollar", "$ x", expect(run{"$ x", Character})},
	}

	p := Default()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, classify(t, p, tc.input))
		})
	}
}

func TestClassifyCashTag(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Category
	}{
		{"letters", "$ETH", expect(run{"$ETH", Cash})},
		{"before comma", "$ETH, ok", expect(run{"$ETH", Cash}, run{", ok", Character})},
		{"before unicode letter", "$ETHé", expect(run{"$ETHé", Character})},
		{"digits", "$100", expect(run{"$100", Cash})},
		{"digits then letters", "$1INCH", expect(run{"$1INCH", Cash})},
		{"digits before dot", "test $123.", expect(run{"test $123.", Character})},
		{"decimal", "$1.5", expect(run{"$1.5", Character})},
		{"thousands", "$5k", expect(run{"$5k", Character})},
		{"millions", "$5M", expect(run{"$5M", Character})},
		{"percent", "$5%", expect(run{"$5", Cash}, run{"%", Character})},
		{"cjk", "$比特币", expect(run{"$比特币", Cash})},
		{"cjk mixed", "$中国A_1 x", expect(run{"$中国A_1", Cash}, run{" x", Character})},
		{"cjk supplementary plane", "$𠀀𠀁", expect(run{"$𠀀𠀁", Cash})},
		{"full-width latin", "$ＡＢＣ", expect(run{"$ＡＢＣ", Cash})},
		{"cjk punctuation", "$。", expect(run{"$。", Character})},
	}

	p := Default()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, classify(t, p, tc.input))
		})
	}
}

func TestClassifyCashTagCaps(t *testing.T) {
	tests := []struct {
		name string
		body string
		next string
		cap  int
	}{
		{"ascii", strings.Repeat("A", MaxCashTagLen), "A", MaxCashTagLen},
		{"digits", strings.Repeat("1", MaxDigitCashTagLen), "1", MaxDigitCashTagLen},
		{"cjk", strings.Repeat("中", MaxCJKCashTagLen), "中", MaxCJKCashTagLen},
	}

	p := Default()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.cap, utf8.RuneCountInString(tc.body))

			got := classify(t, p, "$"+tc.body)
			require.Equal(t, expect(run{"$" + tc.body, Cash}), got)

			got = classify(t, p, "$"+tc.body+tc.next)
			require.Equal(t, expect(run{"$" + tc.body, Cash}, run{tc.next, Character}), got)
		})
	}
}

func TestClassifyUserName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		allowDot bool
		want     []Category
	}{
		{"dash and underscore", "@a_b-c", false, expect(run{"@a_b-c", UserName})},
		{"sentence dot", "hi @test.", false, expect(run{"hi ", Character}, run{"@test", UserName}, run{".", Character})},
		{"dot disabled", "@a.bc", false, expect(run{"@a", UserName}, run{".bc", Character})},
		{"dot enabled", "@a.bc", true, expect(run{"@a.bc", UserName})},
		{"dot enabled sentence", "@a. b", true, expect(run{"@a", UserName}, run{". b", Character})},
		{"dot enabled trailing", "@a.", true, expect(run{"@a", UserName}, run{".", Character})},
		{"mention keeps domain out", "@foo.com", false, expect(run{"@foo", UserName}, run{".com", Character})},
		{"in word", "mail@test", false, expect(run{"mail", Character}, run{"@test", UserName})},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewParser(WithDotInUsername(tc.allowDot))
			require.NoError(t, err)

			require.Equal(t, tc.want, classify(t, p, tc.input))
		})
	}
}

func TestClassifyCustomSuffix(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		suffixes []string
		want     []Category
	}{
		{"default eth", "vitalik.eth", DefaultSuffixes, expect(run{"vitalik.eth", CustomUser})},
		{"eth sentence dot", "vitalik.eth.", DefaultSuffixes, expect(run{"vitalik.eth", CustomUser}, run{".", Character})},
		{"eth domain", "0xluo.eth.limo", DefaultSuffixes, expect(run{"0xluo.eth.limo", Url})},
		{"word start", "hi @a.lens!", DefaultSuffixes, expect(run{"hi ", Character}, run{"@a.lens", CustomUser}, run{"!", Character})},
		{"custom", "me.bsky", []string{"bsky"}, expect(run{"me.bsky", CustomUser})},
		{"removed", "test.twitter", []string{"bsky"}, expect(run{"test.twitter", Character})},
		{"none", "test.lens", nil, expect(run{"test.lens", Character})},
		{"suffix ends the word", "a.farcaster", []string{"far", "farcaster"}, expect(run{"a.farcaster", CustomUser})},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewParser(WithCustomSuffixes(tc.suffixes...))
			require.NoError(t, err)

			require.Equal(t, tc.want, classify(t, p, tc.input))
		})
	}
}

func TestClassifyMixed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Category
	}{
		{
			name:  "all kinds",
			input: "test test.com @test $test /test test.twitter test.lens https://test.com test.host.com",
			want: expect(
				run{"test ", Character},
				run{"test.com", Url},
				run{" ", Character},
				run{"@test", UserName},
				run{" ", Character},
				run{"$test", Cash},
				run{" ", Character},
				run{"/test", Channel},
				run{" ", Character},
				run{"test.twitter", CustomUser},
				run{" ", Character},
				run{"test.lens", CustomUser},
				run{" ", Character},
				run{"https://test.com", Url},
				run{" ", Character},
				run{"test.host.com", Url},
			),
		},
		{
			name:  "bio with headless url",
			input: "crypto-anarchist · DeFi degen · DeSoc explorer, advisor · hosting /luo · writing 0xluo.eth.limo",
			want: expect(
				run{"crypto-anarchist · DeFi degen · DeSoc explorer, advisor · hosting ", Character},
				run{"/luo", Channel},
				run{" · writing ", Character},
				run{"0xluo.eth.limo", Url},
			),
		},
		{
			name:  "bio with handle",
			input: "Mask.io / suji_yan.twitter checkout /firefly-garden",
			want: expect(
				run{"Mask.io", Url},
				run{" / ", Character},
				run{"suji_yan.twitter", CustomUser},
				run{" checkout ", Character},
				run{"/firefly-garden", Channel},
			),
		},
		{
			name: "bio with pronouns",
			input: "(she/her) Web3 enthusiast. Learning in Public. Built /animeoutcasts Unofficial Hambassasor " +
				"|General of the North In /japan and /kyoto for /sakura",
			want: expect(
				run{"(she/her) Web3 enthusiast. Learning in Public. Built ", Character},
				run{"/animeoutcasts", Channel},
				run{" Unofficial Hambassasor |General of the North In ", Character},
				run{"/japan", Channel},
				run{" and ", Character},
				run{"/kyoto", Channel},
				run{" for ", Character},
				run{"/sakura", Channel},
			),
		},
		{
			name:  "bio with path",
			input: "dad • sr full stack dev • Building /360 • ENS degen • vision.io/0x/dos • /journal /black /btw /king",
			want: expect(
				run{"dad • sr full stack dev • Building ", Character},
				run{"/360", Channel},
				run{" • ENS degen • ", Character},
				run{"vision.io/0x/dos", Url},
				run{" • ", Character},
				run{"/journal", Channel},
				run{" ", Character},
				run{"/black", Channel},
				run{" ", Character},
				run{"/btw", Channel},
				run{" ", Character},
				run{"/king", Channel},
			),
		},
	}

	p := Default()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, classify(t, p, tc.input))
		})
	}
}
