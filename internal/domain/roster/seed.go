package roster

// Seed returns the fixed dataset the store starts from. The collection lives
// only for the process session; there is no persistence behind it.
func Seed() []Employee {
	return []Employee{
		{ID: 1, FirstName: "Ahmet", LastName: "Yilmaz", EmploymentDate: "23/09/2022", BirthDate: "12/03/1994", Phone: "+905321112233", Email: "ahmet.yilmaz@example.com", Department: "Analytics", Position: "Junior"},
		{ID: 2, FirstName: "Elif", LastName: "Demir", EmploymentDate: "05/01/2021", BirthDate: "28/07/1990", Phone: "+905335554411", Email: "elif.demir@example.com", Department: "Tech", Position: "Senior"},
		{ID: 3, FirstName: "Mehmet", LastName: "Kaya", EmploymentDate: "14/06/2023", BirthDate: "02/11/1997", Phone: "+905347778899", Email: "mehmet.kaya@example.com", Department: "Tech", Position: "Junior"},
		{ID: 4, FirstName: "Zeynep", LastName: "Celik", EmploymentDate: "30/03/2020", BirthDate: "19/05/1988", Phone: "+905361234567", Email: "zeynep.celik@example.com", Department: "Analytics", Position: "Senior"},
		{ID: 5, FirstName: "Murat", LastName: "Sahin", EmploymentDate: "11/11/2021", BirthDate: "07/09/1992", Phone: "+905373216549", Email: "murat.sahin@example.com", Department: "Tech", Position: "Medior"},
		{ID: 6, FirstName: "Ayse", LastName: "Arslan", EmploymentDate: "02/02/2022", BirthDate: "25/12/1995", Phone: "+905389873210", Email: "ayse.arslan@example.com", Department: "Analytics", Position: "Medior"},
		{ID: 7, FirstName: "Can", LastName: "Dogan", EmploymentDate: "17/08/2023", BirthDate: "03/04/1999", Phone: "+905391112244", Email: "can.dogan@example.com", Department: "Tech", Position: "Junior"},
		{ID: 8, FirstName: "Selin", LastName: "Kurt", EmploymentDate: "09/05/2019", BirthDate: "14/10/1987", Phone: "+905302223355", Email: "selin.kurt@example.com", Department: "Analytics", Position: "Senior"},
		{ID: 9, FirstName: "Emre", LastName: "Aydin", EmploymentDate: "21/07/2022", BirthDate: "30/01/1993", Phone: "+905313334466", Email: "emre.aydin@example.com", Department: "Tech", Position: "Medior"},
		{ID: 10, FirstName: "Deniz", LastName: "Ozturk", EmploymentDate: "04/12/2020", BirthDate: "22/06/1991", Phone: "+905324445577", Email: "deniz.ozturk@example.com", Department: "Analytics", Position: "Junior"},
		{ID: 11, FirstName: "Burak", LastName: "Koc", EmploymentDate: "26/10/2021", BirthDate: "08/08/1996", Phone: "+905335556688", Email: "burak.koc@example.com", Department: "Tech", Position: "Senior"},
		{ID: 12, FirstName: "Gizem", LastName: "Polat", EmploymentDate: "13/04/2023", BirthDate: "17/02/1998", Phone: "+905346667799", Email: "gizem.polat@example.com", Department: "Analytics", Position: "Medior"},
	}
}
