// Package kindpkg provides the jar and transaction kind vocabularies shared by all layers.
package kindpkg

// Constants for all jar kinds.
const (
	Spend = "spend"
	Save  = "save"
	Give  = "give"
)

// JarKinds holds all jar kinds in display order.
var JarKinds = []string{
	Spend,
	Save,
	Give,
}

// IsSupportedJarKind returns true if the jar kind is supported.
func IsSupportedJarKind(kind string) bool {
	for _, k := range JarKinds {
		if k == kind {
			return true
		}
	}

	return false
}

// Constants for all transaction kinds.
const (
	Deposit    = "deposit"
	Withdrawal = "withdrawal"
	Interest   = "interest"
)

// TransactionKinds holds all transaction kinds.
var TransactionKinds = []string{
	Deposit,
	Withdrawal,
	Interest,
}

// IsSupportedTransactionKind returns true if the transaction kind is supported.
func IsSupportedTransactionKind(kind string) bool {
	for _, k := range TransactionKinds {
		if k == kind {
			return true
		}
	}

	return false
}
