// Package plotdata produces the geometry a frontend needs to draw how a
// quadrature rule carves up an interval: a dense sampled curve for smooth
// plotting plus one overlay shape per quadrature cell.
//
// The shape set mirrors each rule's decomposition exactly:
//   - Trapezoidal → one Trapezoid per subinterval, corners on the curve.
//   - Midpoint    → one Rectangle per subinterval at the midpoint height.
//   - Simpson     → one Parabola per pair of subintervals, through three
//     consecutive curve samples.
//
// Simpson's odd-n adjustment is applied before shapes are generated, so the
// overlay always matches the numeric approximation actually reported: asking
// for n=5 draws 3 parabolas over 6 subintervals, exactly what SimpsonRule
// integrated.
//
// Shape is a sealed variant — only the three concrete shapes implement it —
// and every shape marshals to JSON with a "type" discriminator, so a
// renderer can switch on it without guessing from field presence.
//
// The builder is stateless and recomputes everything per call; its only
// failure modes are argument backstops and the integrand producing a
// non-finite sample.
package plotdata
