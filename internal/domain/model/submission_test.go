package model_test

import (
	"testing"
	"time"

	"github.com/okian/lovecalc/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
	"go.mongodb.org/mongo-driver/bson"
)

func TestNewSubmission(t *testing.T) {
	convey.Convey("Given submission input with padded names", t, func() {
		now := time.Date(2025, 2, 14, 12, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))
		s := model.NewSubmission("  Alice ", 22, "\tBob\n", 45, now)

		convey.Convey("Then names are trimmed and the date is stamped in UTC", func() {
			convey.So(s.YourName, convey.ShouldEqual, "Alice")
			convey.So(s.CrushName, convey.ShouldEqual, "Bob")
			convey.So(s.YourAge, convey.ShouldEqual, 22)
			convey.So(s.CalculatedPercentage, convey.ShouldEqual, 45)
			convey.So(s.Date.Equal(now), convey.ShouldBeTrue)
			convey.So(s.Date.Location(), convey.ShouldEqual, time.UTC)
			convey.So(s.ID.IsZero(), convey.ShouldBeTrue)
		})
	})
}

func TestSubmission_BSON(t *testing.T) {
	convey.Convey("Given a submission without an id", t, func() {
		s := model.NewSubmission("Alice", 22, "Bob", 45, time.Now())

		convey.Convey("When it is marshalled for the document store", func() {
			raw, err := bson.Marshal(s)
			convey.So(err, convey.ShouldBeNil)

			var doc bson.M
			convey.So(bson.Unmarshal(raw, &doc), convey.ShouldBeNil)

			convey.Convey("Then it uses the collection's field names and lets the store assign _id", func() {
				convey.So(doc, convey.ShouldNotContainKey, "_id")
				convey.So(doc["yourName"], convey.ShouldEqual, "Alice")
				convey.So(doc["crushName"], convey.ShouldEqual, "Bob")
				convey.So(doc, convey.ShouldContainKey, "yourAge")
				convey.So(doc, convey.ShouldContainKey, "calculatedPercentage")
				convey.So(doc, convey.ShouldContainKey, "date")
			})
		})
	})
}
