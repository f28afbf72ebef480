// Package fire implements the stochastic heat-propagation automaton that
// drives every renderer.
//
// The field is a row-major byte grid; row 0 is the top of the flame and the
// last row is the source. Each tick runs two phases:
//
//   - Seed: the source row is stochastically re-ignited so it flickers
//     instead of burning as a solid bar.
//   - Propagate: every other row, swept top to bottom over the single shared
//     buffer, pulls heat from the cell below and scatters it into a randomly
//     chosen lateral neighbor with a random decay.
//
// The scatter randomizes the destination column rather than the source, so
// within one tick several sources may land on the same destination (last
// write wins) and some destinations stay untouched. Together with the
// ascending single-buffer sweep this gives the flame its ragged, licking
// shape; do not replace it with symmetric neighbor averaging.
package fire
