/*package geom contains 3D geometric primitives and the algorithms for
intersecting them and measuring the distances between them.

The primitives are Line3, Ray3, Segment3, Plane, Triangle3 and Sphere. All of
them are immutable values: every transform returns a new primitive. Queries
which may have no answer, such as the intersection of two skew lines or the
circumcenter of a degenerate triangle, return a (value, ok) pair.

Directions and normals are expected to be unit vectors. This is not checked;
use the Normalize methods or the constructors, which normalize for you.
Every approximate test uses num.Epsilon.

Since Go has no overloading, methods which take a point use the bare name
(Distance, ApproxContains, ProjectPoint) and methods which take another
primitive are suffixed with its type (DistanceRay, ApproxIntersectsSegment,
IntersectionLine).
*/
package geom
