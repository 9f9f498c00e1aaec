package scoring_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/okian/lovecalc/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestScore_KnownValues(t *testing.T) {
	Convey("Given pairs of names with hand-computed scores", t, func() {
		cases := []struct {
			name1, name2 string
			want         int
		}{
			{"ab", "cd", 37},                       // [1,1,1,1] -> [2,2] -> 22 -> +15
			{"Alice", "Bob", 45},                   // [1,1,1,1,1,2,1] -> [2,3,2,2] -> [4,5]
			{"Bob", "Alice", 54},                   // [2,1,1,1,1,1,1] -> [3,2,2,2] -> [5,4]
			{"abc", "", 37},                        // odd middle pairs with itself: [2,2]
			{"a", "", 25},                          // single value 1 -> 10 -> +15
			{"aa", "a", 30},                        // single value 3 -> 30, no boost
			{"ab", "", 26},                         // [1,1] -> 11 -> +15
			{strings.Repeat("a", 12), "b", 36},     // "121" -> 21 -> +15
			{strings.Repeat("a", 12), strings.Repeat("b", 12), 27}, // "1212" -> 12 -> +15
			{strings.Repeat("a", 10), strings.Repeat("b", 10), 25}, // "1010" -> 10 -> +15
		}

		for _, c := range cases {
			Convey("score("+c.name1+", "+c.name2+")", func() {
				So(scoring.Score(c.name1, c.name2), ShouldEqual, c.want)
			})
		}
	})
}

func TestExplain(t *testing.T) {
	Convey("Given the names ab and cd", t, func() {
		b := scoring.Explain("ab", "cd")

		Convey("Then every intermediate step is reported", func() {
			So(b.Combined, ShouldEqual, "abcd")
			So(b.Counts, ShouldResemble, []int{1, 1, 1, 1})
			So(b.Passes, ShouldResemble, [][]int{{2, 2}})
			So(b.Digits, ShouldEqual, "22")
			So(b.Raw, ShouldEqual, 22)
			So(b.Score, ShouldEqual, 37)
		})
	})

	Convey("Given names that need several folding passes", t, func() {
		b := scoring.Explain("Alice", "Bob")

		Convey("Then each pass halves the sequence", func() {
			So(b.Counts, ShouldResemble, []int{1, 1, 1, 1, 1, 2, 1})
			So(b.Passes, ShouldResemble, [][]int{{2, 3, 2, 2}, {4, 5}})
			So(b.Digits, ShouldEqual, "45")
		})
	})

	Convey("Given names with two or fewer distinct characters", t, func() {
		b := scoring.Explain("aaa", "bb")

		Convey("Then no folding happens", func() {
			So(b.Passes, ShouldBeEmpty)
			So(b.Digits, ShouldEqual, "32")
			So(b.Score, ShouldEqual, 32)
		})
	})
}

func TestScore_EmptyInput(t *testing.T) {
	Convey("Given names that are empty after removing whitespace", t, func() {
		Convey("Then the joined digits are empty and treated as zero", func() {
			b := scoring.Explain("", "  \t\n")
			So(b.Counts, ShouldBeEmpty)
			So(b.Digits, ShouldEqual, "")
			So(b.Raw, ShouldEqual, 0)
			So(b.Score, ShouldEqual, 15)
			So(scoring.Score("", ""), ShouldEqual, 15)
		})
	})
}

func TestScore_Properties(t *testing.T) {
	Convey("Given the scoring function", t, func() {
		Convey("Then it is case-insensitive", func() {
			So(scoring.Score("Alice", "Bob"), ShouldEqual, scoring.Score("ALICE", "BOB"))
			So(scoring.Score("Alice", "Bob"), ShouldEqual, scoring.Score("alice", "bob"))
			So(scoring.Score("Ärger", "Öl"), ShouldEqual, scoring.Score("ärger", "öl"))
		})

		Convey("Then it ignores embedded whitespace", func() {
			So(scoring.Score("A B", "C"), ShouldEqual, scoring.Score("AB", "C"))
			So(scoring.Score("Mary Jane", " Peter\tParker "), ShouldEqual, scoring.Score("MaryJane", "PeterParker"))
			So(scoring.Explain("A B", "C").Combined, ShouldEqual, "abc")
		})

		Convey("Then swapping names keeps the character multiset", func() {
			ab := scoring.Explain("Alice", "Bob")
			ba := scoring.Explain("Bob", "Alice")
			So(sum(ab.Counts), ShouldEqual, sum(ba.Counts))
			So(len(ab.Counts), ShouldEqual, len(ba.Counts))
			So(ab.Score, ShouldNotEqual, ba.Score)
		})

		Convey("Then it is deterministic", func() {
			for i := 0; i < 10; i++ {
				So(scoring.Score("Romeo", "Juliet"), ShouldEqual, scoring.Score("Romeo", "Juliet"))
			}
		})

		Convey("Then every non-empty pair scores within [0, 100]", func() {
			rng := rand.New(rand.NewSource(7)) //nolint:gosec // deterministic fixture generation
			const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 -'éü"
			runes := []rune(alphabet)
			randomName := func() string {
				n := 1 + rng.Intn(40)
				var sb strings.Builder
				for i := 0; i < n; i++ {
					sb.WriteRune(runes[rng.Intn(len(runes))])
				}
				return sb.String()
			}
			for i := 0; i < 2000; i++ {
				got := scoring.Score(randomName(), randomName())
				So(got, ShouldBeBetweenOrEqual, 0, scoring.MaxScore)
			}
		})
	})
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
