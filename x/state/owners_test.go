package state

import (
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func addr(b byte) quorum.Address {
	var a quorum.Address
	a[quorum.AddressLength-1] = b
	return a
}

func TestOwnerSetArena(t *testing.T) {
	Convey("Given an owner set of four", t, func() {
		a, b, c, d := addr(1), addr(2), addr(3), addr(4)
		set, err := NewOwnerSet(a, b, c, d)
		So(err, ShouldBeNil)
		So(set.Len(), ShouldEqual, 4)
		So(set.Validate(), ShouldBeNil)

		Convey("Removing from the middle moves the last owner into the gap", func() {
			So(set.Remove(b), ShouldBeNil)
			So(set.List(), ShouldResemble, []quorum.Address{a, d, c})
			So(set.Has(b), ShouldBeFalse)
			So(set.Has(d), ShouldBeTrue)
			So(set.Validate(), ShouldBeNil)

			Convey("and the moved owner can be removed again", func() {
				So(set.Remove(d), ShouldBeNil)
				So(set.List(), ShouldResemble, []quorum.Address{a, c})
				So(set.Validate(), ShouldBeNil)
			})
		})

		Convey("Removing the last element shrinks the set", func() {
			So(set.Remove(d), ShouldBeNil)
			So(set.List(), ShouldResemble, []quorum.Address{a, b, c})
			So(set.Validate(), ShouldBeNil)
		})

		Convey("Removing everything leaves an empty consistent set", func() {
			for _, o := range []quorum.Address{c, a, d, b} {
				So(set.Remove(o), ShouldBeNil)
			}
			So(set.Len(), ShouldEqual, 0)
			So(set.Validate(), ShouldBeNil)
		})

		Convey("A removed owner can be added back at the end", func() {
			So(set.Remove(a), ShouldBeNil)
			So(set.Add(a), ShouldBeNil)
			So(set.List(), ShouldResemble, []quorum.Address{d, b, c, a})
			So(set.Validate(), ShouldBeNil)
		})

		Convey("Duplicates, zero and unknown owners are rejected", func() {
			So(errors.ErrDuplicateOwner.Is(set.Add(c)), ShouldBeTrue)
			So(errors.ErrInvalidOwner.Is(set.Add(quorum.ZeroAddress)), ShouldBeTrue)
			So(errors.ErrNotOwner.Is(set.Remove(addr(9))), ShouldBeTrue)
			So(set.Len(), ShouldEqual, 4)
		})

		Convey("Sorted does not change the arena order", func() {
			So(set.Remove(a), ShouldBeNil)
			So(set.Sorted(), ShouldResemble, []quorum.Address{b, c, d})
			So(set.List(), ShouldResemble, []quorum.Address{d, b, c})
		})

		Convey("A clone is independent", func() {
			clone := set.Clone()
			So(clone.Remove(a), ShouldBeNil)
			So(set.Has(a), ShouldBeTrue)
			So(clone.Has(a), ShouldBeFalse)
		})
	})

	Convey("Creating a set with duplicates fails", t, func() {
		_, err := NewOwnerSet(addr(1), addr(2), addr(1))
		So(errors.ErrDuplicateOwner.Is(err), ShouldBeTrue)
	})
}
