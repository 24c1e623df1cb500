package compound

// Matrix is the 5x5 Dunkin compound matrix of a single layer. Row j maps
// component j of the incoming propagator vector onto all five outputs.
type Matrix [5][5]float64

// Dunkin assembles the compound matrix of one layer from its eigenfunction
// products. gam = 2*beta^2*k^2/omega^2 and gammk = 2*beta^2/omega^2 for the
// layer shear velocity beta; rho is the layer density.
func Dunkin(wvno2, gam, gammk, rho float64, pr Products) Matrix {
	var ca Matrix

	gamm1 := gam - 1
	twgm1 := gam + gamm1
	gmgmk := gam * gammk
	gmgm1 := gam * gamm1
	gm1sq := gamm1 * gamm1

	rho2 := rho * rho
	a0pq := pr.A0 - pr.CPCQ
	t := -2 * wvno2

	ca[0][0] = pr.CPCQ - 2*gmgm1*a0pq - gmgmk*pr.XZ - wvno2*gm1sq*pr.WY
	ca[0][1] = (wvno2*pr.CPY - pr.CQX) / rho
	ca[0][2] = -(twgm1*a0pq + gammk*pr.XZ + wvno2*gamm1*pr.WY) / rho
	ca[0][3] = (pr.CPZ - wvno2*pr.CQW) / rho
	ca[0][4] = -(2*wvno2*a0pq + pr.XZ + wvno2*wvno2*pr.WY) / rho2

	ca[1][0] = (gmgmk*pr.CPZ - gm1sq*pr.CQW) * rho
	ca[1][1] = pr.CPCQ
	ca[1][2] = gammk*pr.CPZ - gamm1*pr.CQW
	ca[1][3] = -pr.WZ
	ca[1][4] = ca[0][3]

	ca[3][0] = (gm1sq*pr.CPY - gmgmk*pr.CQX) * rho
	ca[3][1] = -pr.XY
	ca[3][2] = gamm1*pr.CPY - gammk*pr.CQX
	ca[3][3] = ca[1][1]
	ca[3][4] = ca[0][1]

	ca[4][0] = -(2*gmgmk*gm1sq*a0pq + gmgmk*gmgmk*pr.XZ + gm1sq*gm1sq*pr.WY) * rho2
	ca[4][1] = ca[3][0]
	ca[4][2] = -(gammk*gamm1*twgm1*a0pq + gam*gammk*gammk*pr.XZ + gamm1*gm1sq*pr.WY) * rho
	ca[4][3] = ca[1][0]
	ca[4][4] = ca[0][0]

	ca[2][0] = t * ca[4][2]
	ca[2][1] = t * ca[3][2]
	ca[2][2] = pr.A0 + 2*(pr.CPCQ-ca[0][0])
	ca[2][3] = t * ca[1][2]
	ca[2][4] = t * ca[0][2]

	return ca
}
