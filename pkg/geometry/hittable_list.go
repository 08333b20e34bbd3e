package geometry

import (
	"github.com/df07/go-diffuse-raytracer/pkg/core"
	"github.com/df07/go-diffuse-raytracer/pkg/material"
)

// HittableList is an ordered collection of hittables that reports the
// nearest hit among its members
type HittableList struct {
	objects []Hittable
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	list := &HittableList{}
	list.Add(objects...)
	return list
}

// Add appends objects to the list
func (l *HittableList) Add(objects ...Hittable) {
	l.objects = append(l.objects, objects...)
}

// Objects returns the members of the list
func (l *HittableList) Objects() []Hittable {
	return l.objects
}

// Len returns the number of members
func (l *HittableList) Len() int {
	return len(l.objects)
}

// Hit returns the nearest intersection across all members. Each accepted hit
// shrinks the interval's end to its t, so later members can only replace it
// with something closer and the result does not depend on member order.
// A member reporting a t outside the narrowed interval is ignored.
func (l *HittableList) Hit(ray core.Ray, interval core.Interval) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := interval

	for _, object := range l.objects {
		if hit, isHit := object.Hit(ray, closestSoFar); isHit && closestSoFar.Surrounds(hit.T) {
			closestSoFar.End = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
