package stwoverifier

// Tree layout of the commitment scheme: the preprocessed columns tree comes
// first, the execution trace tree second.
const PREPROCESSED_TRACE_IDX = 0
const TRACE_IDX = 1
const N_TREES = 2

// The proof system samples in a degree 4 extension of the base field.
const SECURE_EXTENSION_DEGREE = 4

// Draw count sent with the verify call; the current protocol always uses 0.
const N_DRAWS = 0

const DATA_CACHE_DIR = ".stwo-cache"
const FIXTURE_FILE = "PROOF.FIB.JSON"
const FIXTURE_DOWNLOAD_URL = "https://static.neotheprogramist.dev/stwo/fixtures/PROOF.FIB.JSON"
const FIXTURE_HASH = "9b1f44d1c8f0a0f0a9a0b6f3f2b0b84f3cb3f6a11a2a52a38566cf8bdbd0a26e"
