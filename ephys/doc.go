// Package ephys holds the types shared by the electrophysiology coding
// packages: trace identifiers and attributable errors.
//
// The processing stages live in sub-packages:
//
//   - [github.com/cwbudde/algo-ephys/ephys/trace]: alignment and standardization
//   - [github.com/cwbudde/algo-ephys/ephys/dictionary]: wavelet dictionary construction
//   - [github.com/cwbudde/algo-ephys/ephys/sparse]: L1-regularized sparse coding
//   - [github.com/cwbudde/algo-ephys/ephys/assemble]: coefficient matrix assembly
//   - [github.com/cwbudde/algo-ephys/ephys/pipeline]: batch driver
package ephys
