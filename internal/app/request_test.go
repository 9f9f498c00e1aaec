package service_test

import (
	"encoding/json"
	"errors"
	"testing"

	service "github.com/okian/lovecalc/internal/app"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRequest_Decode(t *testing.T) {
	Convey("Given request bodies from the form", t, func() {
		decode := func(body string) (service.Request, error) {
			var req service.Request
			err := json.Unmarshal([]byte(body), &req)
			return req, err
		}

		Convey("When yourAge is a number", func() {
			req, err := decode(`{"yourName":"a","yourAge":23,"crushName":"b","calculatedPercentage":50}`)

			Convey("Then every field is decoded", func() {
				So(err, ShouldBeNil)
				So(req.YourAge, ShouldEqual, service.Age(23))
				So(*req.CalculatedPercentage, ShouldEqual, 50)
			})
		})

		Convey("When yourAge is a string as sent by a text input", func() {
			req, err := decode(`{"yourAge":"23"}`)
			So(err, ShouldBeNil)
			So(req.YourAge, ShouldEqual, service.Age(23))
		})

		Convey("When yourAge has trailing text or a fraction", func() {
			req, err := decode(`{"yourAge":" 31 years"}`)
			So(err, ShouldBeNil)
			So(req.YourAge, ShouldEqual, service.Age(31))

			req, err = decode(`{"yourAge":17.9}`)
			So(err, ShouldBeNil)
			So(req.YourAge, ShouldEqual, service.Age(17))
		})

		Convey("When yourAge is null or absent", func() {
			req, err := decode(`{"yourAge":null}`)
			So(err, ShouldBeNil)
			So(req.YourAge, ShouldEqual, service.Age(0))

			req, err = decode(`{}`)
			So(err, ShouldBeNil)
			So(req.YourAge, ShouldEqual, service.Age(0))
			So(req.CalculatedPercentage, ShouldBeNil)
		})

		Convey("When yourAge is not a number", func() {
			_, err := decode(`{"yourAge":"twenty"}`)
			So(errors.Is(err, service.ErrInvalidAge), ShouldBeTrue)

			_, err = decode(`{"yourAge":true}`)
			So(errors.Is(err, service.ErrInvalidAge), ShouldBeTrue)
		})
	})
}

func TestParseAge(t *testing.T) {
	Convey("Given strings typed into the age field", t, func() {
		cases := map[string]service.Age{
			"16":    16,
			"+20":   20,
			"-3":    -3,
			"\t42x": 42,
			"007":   7,
		}
		for in, want := range cases {
			got, err := service.ParseAge(in)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, want)
		}

		for _, in := range []string{"", "-", "abc", " ", "99999999999"} {
			_, err := service.ParseAge(in)
			So(errors.Is(err, service.ErrInvalidAge), ShouldBeTrue)
		}
	})
}
